package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/services"

	"github.com/google/uuid"
)

// UsersRepository is the storage surface UserService needs. Lookups return
// (nil, nil) when no user matches.
type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UsersRepository
}

// Register creates a new account. The password arrives already policy-checked
// by the binding layer; it is hashed here and never stored in plaintext.
// A duplicate email surfaces as ErrEmailTaken, backed by the unique index.
func (svc *UserService) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair. Unknown email and wrong
// password both collapse into ErrInvalidCredentials.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetProfile resolves a user id (from a validated token) to the account.
func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
