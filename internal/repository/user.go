package repository

import (
	"context"

	"github.com/nextgencars/backend/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id uint) (user.User, error)
	// GetUserByLogin matches either the username or the email address.
	GetUserByLogin(ctx context.Context, login string) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	SaveUser(ctx context.Context, u *user.User) error
	DeleteUser(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(ctx context.Context, id uint) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByLogin(ctx context.Context, login string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = LOWER(?)", login, login).
		First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *DBUserRepo) DeleteUser(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&user.User{}, "user_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
