package service

import (
	"errors"

	"quizify_backend/internal/config"
	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	ranking  *RankingService
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, ranking *RankingService) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, ranking: ranking}
}

// Register creates a regular-role account. New users enter the ranking
// immediately, so a recompute follows the insert.
func (s *AuthService) Register(username, email, password string) (*model.User, error) {
	_, err := s.userRepo.FindByUsernameOrEmail(username, email)
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
		RoleID:       model.RoleRegular,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.ranking.RecomputeRanksAsyncSafe()
	return user, nil
}

// Login verifies credentials and issues a signed JWT.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, util.ErrPermissionDenied
	}

	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
