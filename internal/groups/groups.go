// Package groups holds the group stores: an in-memory store, a sqlite store
// and a client for a remote groupedit server. All of them apply the same
// field validation and report failures as *domain.FieldError.
package groups

import (
	"context"
	"errors"
	"strings"

	"groupedit/internal/domain"
)

// ErrGroupNotFound is returned when a group id does not exist
var ErrGroupNotFound = errors.New("group not found")

// Validation messages
const (
	MsgNameRequired      = "Name is required"
	MsgNameTaken         = "A group with that name already exists"
	MsgInvalidAddAllowed = "Invalid value for addAllowed"
)

// Store persists group records
type Store interface {
	List(ctx context.Context) ([]*domain.GroupRecord, error)
	Get(ctx context.Context, id int64) (*domain.GroupRecord, error)
	Create(ctx context.Context, fields domain.GroupFields) (*domain.GroupRecord, error)
	Update(ctx context.Context, record *domain.GroupRecord, fields domain.GroupFields) (*domain.GroupRecord, error)
}

// ValidateFields trims the submitted fields and checks them.
// It returns the cleaned fields or a *domain.FieldError.
func ValidateFields(fields domain.GroupFields) (domain.GroupFields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Description = strings.TrimSpace(fields.Description)

	if fields.Name == "" {
		return fields, &domain.FieldError{Field: "name", Message: MsgNameRequired}
	}
	if fields.AddAllowed != nil && !fields.AddAllowed.Valid() {
		return fields, &domain.FieldError{Field: "addAllowed", Message: MsgInvalidAddAllowed}
	}
	return fields, nil
}

// nameKey is the comparison key for name uniqueness
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func nameTaken() error {
	return &domain.FieldError{Field: "name", Message: MsgNameTaken}
}
