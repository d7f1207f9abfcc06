package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
	"github.com/DhavalSuthar-24/baskettime/pkg/validator"
	"github.com/DhavalSuthar-24/baskettime/utils"
)

var (
	registerMessages = validator.Messages{
		"username": "Username required (min 2 characters)",
		"password": "Password required (min 6 characters)",
	}
	errUsernameTaken      = common.Conflict("Username already taken")
	errCredentialsMissing = common.InvalidInput("Username and password required")
	errBadCredentials     = common.Unauthorized("Invalid username or password")
)

// Service is the credential store: it creates accounts and checks passwords.
type Service struct {
	repo       AuthRepository
	bcryptCost int
}

func NewService(repo AuthRepository, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register creates an account. Usernames are trimmed and compared case-sensitively.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validator.Struct(req, registerMessages); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("look up username: %w", err)
	}
	if existing != nil {
		return nil, errUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &user.User{Username: req.Username, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate returns the account matching username and password. An unknown username and a wrong
// password fail identically.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (*user.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validator.Struct(req, nil); err != nil {
		return nil, errCredentialsMissing
	}

	u, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("look up username: %w", err)
	}
	if u == nil || !utils.CheckPassword(u.PasswordHash, req.Password) {
		return nil, errBadCredentials
	}
	return u, nil
}

// CurrentUser returns the account with id, or nil when it does not exist.
func (s *Service) CurrentUser(ctx context.Context, id uint) (*user.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
