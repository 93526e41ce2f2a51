package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// https://www.mongodb.com/docs/manual/core/index-unique/#unique-index-and-duplicate-keys
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
