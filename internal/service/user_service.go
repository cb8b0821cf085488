package service

import (
	"errors"
	"fmt"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"
	"quizify_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
	logRepo  *repository.LogRepository
	ranking  *RankingService
}

func NewUserService(userRepo *repository.UserRepository, logRepo *repository.LogRepository, ranking *RankingService) *UserService {
	return &UserService{userRepo: userRepo, logRepo: logRepo, ranking: ranking}
}

func (s *UserService) List(page, limit int, search string) ([]model.UserWithRole, int64, error) {
	return s.userRepo.List(page, limit, search)
}

func (s *UserService) GetByUsername(username string) (*model.UserWithRole, error) {
	user, err := s.userRepo.FindWithRole(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create is the staff path; unlike Register it accepts an explicit role.
func (s *UserService) Create(username, email, password string, roleID uint, verified bool) (*model.User, error) {
	exists, err := s.userRepo.RoleExists(roleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrRoleNotFound
	}

	_, err = s.userRepo.FindByUsernameOrEmail(username, email)
	if err == nil {
		return nil, util.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		RoleID:       roleID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Verified:     verified,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.ranking.RecomputeRanksAsyncSafe()
	return user, nil
}

// UserUpdate carries the staff-editable fields; nil means "leave unchanged".
type UserUpdate struct {
	Email    *string `json:"email"`
	RoleID   *uint   `json:"role_id"`
	Verified *bool   `json:"verified"`
}

// Update applies a partial update. Verification flips are audit-logged with
// the acting staff member as the performer.
func (s *UserService) Update(username string, upd UserUpdate, performer string) (*model.UserWithRole, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if upd.RoleID != nil {
		exists, err := s.userRepo.RoleExists(*upd.RoleID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, util.ErrRoleNotFound
		}
		updates["role_id"] = *upd.RoleID
	}
	verifiedFlipped := upd.Verified != nil && *upd.Verified != user.Verified
	if upd.Verified != nil {
		updates["verified"] = *upd.Verified
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateFields(user.UserID, updates); err != nil {
			return nil, err
		}
	}

	if verifiedFlipped {
		action := fmt.Sprintf("Set verified=%t for user %q", *upd.Verified, username)
		uid := user.UserID
		if err := s.logRepo.Record(performer, action, &uid, nil); err != nil {
			logger.Log.Error("audit log write failed", zap.Error(err), zap.String("action", action))
		}
	}

	return s.userRepo.FindWithRole(username)
}

// Delete removes a user. Administrator accounts cannot be deleted.
func (s *UserService) Delete(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if user.RoleID == model.RoleAdmin {
		return util.ErrCannotDeleteAdmin
	}
	if err := s.userRepo.Delete(user.UserID); err != nil {
		return err
	}
	s.ranking.RecomputeRanksAsyncSafe()
	return nil
}
