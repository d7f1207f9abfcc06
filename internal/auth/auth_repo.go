package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/user"
)

type AuthRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	// GetUserByUsername and GetUserByID return (nil, nil) when no account matches.
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	GetUserByID(ctx context.Context, id uint) (*user.User, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *authRepository) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.take(r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *authRepository) GetUserByID(ctx context.Context, id uint) (*user.User, error) {
	return r.take(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *authRepository) take(q *gorm.DB) (*user.User, error) {
	var u user.User
	err := q.Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
