package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/idx"
)

// UserService is the admin-facing account CRUD. Self-service flows (login,
// registration, password reset) live in AuthService.
type UserService struct {
	Store store.Store
}

type CreateUserInput struct {
	Email        string
	Telephone    string
	Password     string
	FullName     string
	MobileNumber string
	Role         domain.Role
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		Telephone:    in.Telephone,
		PasswordHash: hash,
		FullName:     in.FullName,
		MobileNumber: in.MobileNumber,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, s.whichTaken(ctx, in.Email, in.Telephone, "")
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

func (s *UserService) List(ctx context.Context, p store.Page) ([]domain.User, int, error) {
	users, err := s.Store.Users().ListUsers(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

type UpdateUserInput struct {
	Email        *string
	Telephone    *string
	Password     *string
	FullName     *string
	MobileNumber *string
	Role         *domain.Role
}

// Update applies the non-nil fields. Changing email or telephone to one
// already in use fails with the matching taken error.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Telephone != nil {
		user.Telephone = *in.Telephone
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.MobileNumber != nil {
		user.MobileNumber = *in.MobileNumber
	}
	if in.Role != nil {
		user.Role = *in.Role
	}

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, s.whichTaken(ctx, user.Email, user.Telephone, user.ID)
		}
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}

	if in.Password != nil {
		hash, err := cryptox.HashPassword(*in.Password)
		if err != nil {
			return domain.User{}, err
		}
		if err := s.Store.Users().UpdatePasswordHash(ctx, id, hash); err != nil {
			return domain.User{}, err
		}
	}

	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.Store.Users().DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// whichTaken resolves a UNIQUE violation to the offending column. selfID is
// excluded so an update that keeps its own email doesn't flag itself.
func (s *UserService) whichTaken(ctx context.Context, email, telephone, selfID string) error {
	if email != "" {
		if u, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil && u.ID != selfID {
			return ErrEmailTaken
		}
	}
	if telephone != "" {
		if u, err := s.Store.Users().GetUserByTelephone(ctx, telephone); err == nil && u.ID != selfID {
			return ErrTelephoneTaken
		}
	}
	return ErrEmailTaken
}
