package repository

import (
	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "user_id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindByUsernameOrEmail backs the duplicate check at registration.
func (r *UserRepository) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? OR email = ?", username, email).First(&user).Error
	return &user, err
}

// List returns one admin page ordered by rank, with the role name joined on.
func (r *UserRepository) List(page, limit int, search string) ([]model.UserWithRole, int64, error) {
	base := r.DB.Model(&model.User{})
	if search != "" {
		base = base.Where("username LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.UserWithRole
	query := r.DB.Table("users u").
		Select("u.user_id, u.username, u.email, u.verified, u.rank, u.total_score, r.role_id, r.name AS role_name").
		Joins("JOIN user_roles r ON r.role_id = u.role_id")
	if search != "" {
		query = query.Where("u.username LIKE ?", "%"+search+"%")
	}
	err := query.Order("u.rank ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&users).Error
	return users, total, err
}

func (r *UserRepository) FindWithRole(username string) (*model.UserWithRole, error) {
	var user model.UserWithRole
	err := r.DB.Table("users u").
		Select("u.user_id, u.username, u.email, u.verified, u.rank, u.total_score, r.role_id, r.name AS role_name").
		Joins("JOIN user_roles r ON r.role_id = u.role_id").
		Where("u.username = ?", username).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateFields(userID uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.User{}).Where("user_id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) Delete(userID uint) error {
	return r.DB.Delete(&model.User{}, "user_id = ?", userID).Error
}

func (r *UserRepository) RoleExists(roleID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Role{}).Where("role_id = ?", roleID).Count(&count).Error
	return count > 0, err
}

// AllByScore returns every user in ranking order: total_score descending,
// user_id ascending as the deterministic tie-break.
func (r *UserRepository) AllByScore() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("total_score DESC, user_id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateRank(userID uint, rank int) error {
	return r.DB.Model(&model.User{}).Where("user_id = ?", userID).Update("rank", rank).Error
}

// TopRanked reads the first limit users by stored rank.
func (r *UserRepository) TopRanked(limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.DB.Table("users").
		Select(`username, total_score, rank`).
		Order("rank ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

func (r *UserRepository) LeaderboardRow(userID uint) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	err := r.DB.Table("users").
		Select(`username, total_score, rank`).
		Where("user_id = ?", userID).
		Take(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
