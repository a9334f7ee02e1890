package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nextgencars/backend/internal/api/middleware"
	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errcode.New(errcode.Unauthenticated, "invalid login or password")
	ErrUsernameTaken      = errcode.New(errcode.BadUserInput, "username or email already taken")
	ErrDeleteSelf         = errcode.New(errcode.BadUserInput, "cannot delete your own account")
	ErrPasswordTooShort   = errcode.New(errcode.BadUserInput, "password must be at least 8 characters")
)

const minPasswordLen = 8

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Login accepts a username or an email address. Unknown logins and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, in user.LoginInput) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByLogin(ctx, strings.TrimSpace(in.Login))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return user.User{}, "", errcode.Wrap(err, "load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UserID, usr.Username, string(usr.Role), config.TokenTTL)
	if err != nil {
		return user.User{}, "", errcode.Wrap(err, "sign token")
	}
	return usr, token, nil
}

// Me returns the caller's own record for any recognized role.
func (s *UserService) Me(ctx context.Context, caller *types.Claims) (*user.User, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	usr, err := s.Repos.User.GetUserByID(ctx, caller.UserID)
	if err != nil {
		return nil, lookupErr(err, "user", caller.UserID)
	}
	return &usr, nil
}

func (s *UserService) List(ctx context.Context, caller *types.Claims) ([]user.User, error) {
	if _, err := RequireRole(caller, user.AdminRoles); err != nil {
		return nil, err
	}
	users, err := s.Repos.User.ListUsers(ctx)
	if err != nil {
		return nil, errcode.Wrap(err, "list users")
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, caller *types.Claims, in user.CreateUserInput) (*user.User, error) {
	if _, err := RequireRole(caller, user.AdminRoles); err != nil {
		return nil, err
	}
	return s.Register(ctx, actorID(caller), in)
}

// Register creates an account without a role check. The admin CLI uses it
// to bootstrap the first admin.
func (s *UserService) Register(ctx context.Context, actor uint, in user.CreateUserInput) (*user.User, error) {
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return nil, badInput(err)
	}
	if len(in.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	for _, login := range []string{in.Username, in.Email} {
		_, err := s.Repos.User.GetUserByLogin(ctx, login)
		if err == nil {
			return nil, ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.Wrap(err, "check login")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errcode.Wrap(err, "hash password")
	}
	usr := &user.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		Role:         role,
		PasswordHash: string(hashed),
	}
	if err := s.Repos.User.SaveUser(ctx, usr); err != nil {
		return nil, errcode.Wrap(err, "create user")
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actor, "create", "user",
		fmt.Sprintf("user_id=%d", usr.UserID), nil, usr, "")
	return usr, nil
}

func (s *UserService) Update(ctx context.Context, caller *types.Claims, id uint, in user.UpdateUserInput) (*user.User, error) {
	if _, err := RequireRole(caller, user.AdminRoles); err != nil {
		return nil, err
	}
	current, err := s.Repos.User.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "user", id)
	}
	next := current

	if in.Email.Set {
		email := strings.TrimSpace(in.Email.Value)
		if in.Email.Null || email == "" {
			return nil, errcode.New(errcode.BadUserInput, "email cannot be empty")
		}
		if email != current.Email {
			other, err := s.Repos.User.GetUserByLogin(ctx, email)
			if err == nil && other.UserID != id {
				return nil, ErrUsernameTaken
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errcode.Wrap(err, "check email")
			}
		}
		next.Email = email
	}
	if in.Role.Set {
		role, err := user.ParseRole(in.Role.Value)
		if in.Role.Null || err != nil {
			return nil, errcode.New(errcode.BadUserInput, "unknown role %q", in.Role.Value)
		}
		next.Role = role
	}
	if in.Password.Set {
		if in.Password.Null || len(in.Password.Value) < minPasswordLen {
			return nil, ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, errcode.Wrap(err, "hash password")
		}
		next.PasswordHash = string(hashed)
	}

	if err := s.Repos.User.SaveUser(ctx, &next); err != nil {
		return nil, errcode.Wrap(err, "update user %d", id)
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "update", "user",
		fmt.Sprintf("user_id=%d", id), current, next, "")
	return &next, nil
}

func (s *UserService) Delete(ctx context.Context, caller *types.Claims, id uint) (bool, error) {
	if _, err := RequireRole(caller, user.AdminRoles); err != nil {
		return false, err
	}
	if caller.UserID == id {
		return false, ErrDeleteSelf
	}
	existing, err := s.Repos.User.GetUserByID(ctx, id)
	if err != nil {
		return false, lookupErr(err, "user", id)
	}
	if err := s.Repos.User.DeleteUser(ctx, id); err != nil {
		return false, lookupErr(err, "user", id)
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "delete", "user",
		fmt.Sprintf("user_id=%d", id), existing, nil, "")
	return true, nil
}
