package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey is returned when an insert violates a unique index,
// e.g. a second category with the same (user_id, name) pair or a second
// user with the same email.
var ErrDuplicateKey = errors.New("duplicate key")

func wrapDuplicateKey(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}
