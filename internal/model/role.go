package model

// Static role ids, seeded at first startup and never mutated afterwards.
const (
	RoleAdmin      uint = 1
	RoleManagement uint = 2
	RoleVerified   uint = 3
	RoleRegular    uint = 4
)

// swagger:model Role
type Role struct {
	RoleID uint   `gorm:"column:role_id;primaryKey" json:"role_id"`
	Name   string `gorm:"size:50;unique;not null" json:"name"`
}

func (Role) TableName() string {
	return "user_roles"
}

// StaffRoles are the roles allowed to use the management surface.
func StaffRoles() []uint {
	return []uint{RoleAdmin, RoleManagement}
}
