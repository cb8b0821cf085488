package model

import "time"

// User carries the denormalized rank and cumulative total_score used by the
// leaderboard. Rank is a cached projection of the live ranking computation,
// rewritten after every scoring event; total_score is the source it derives from.
// swagger:model User
type User struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	RoleID       uint      `gorm:"column:role_id;not null;index" json:"role_id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	Rank         int       `gorm:"not null;default:0" json:"rank"`
	TotalScore   int       `gorm:"column:total_score;not null;default:0" json:"total_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the user holds the Admin or Management role.
func (u *User) IsStaff() bool {
	return u.RoleID == RoleAdmin || u.RoleID == RoleManagement
}

// CanCustomize reports whether the user may exceed the regular-user quiz
// limits (question cap and fixed duration).
func (u *User) CanCustomize() bool {
	return u.IsStaff() || u.RoleID == RoleVerified || u.Verified
}
