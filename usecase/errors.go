package usecase

import "errors"

var (
	// ErrNotFound covers both "does not exist" and "belongs to another
	// user". The two are deliberately indistinguishable so the API never
	// reveals whether other users' data exists.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCategory is returned when a user already has a category
	// with the requested name.
	ErrDuplicateCategory = errors.New("category with this name already exists")

	// ErrCategoryOwnership is returned when a note references a category the
	// requesting user does not own. Rejected at validation time, never
	// silently corrected.
	ErrCategoryOwnership = errors.New("category does not belong to you")

	// ErrEmailTaken is returned on registration with an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password; the two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
