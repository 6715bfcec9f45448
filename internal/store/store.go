// Package store is the persistence layer. Every operation is scoped to an
// owning user; typed errors let handlers map outcomes to responses without
// inspecting driver errors.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks malformed or missing input. Never retried.
	ErrValidation = errors.New("invalid input")
	// ErrNotAuthorized marks an entity owned by a different user. Handlers
	// surface it identically to ErrNotFound so existence never leaks.
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
	// ErrDuplicateEntry marks a second mood entry for one calendar day.
	ErrDuplicateEntry = errors.New("entry already exists for this day")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// isDuplicateKey recognizes unique-constraint violations from either dialect.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
