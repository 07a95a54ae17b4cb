package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// SubjectFromContext extracts the GroupSubject (user ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return "", ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}

	return GroupSubject(userID.String()), nil
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return userID, nil
}

// UserSelfDomain returns the user's private domain for self-owned resources.
func UserSelfDomain(userID string) Domain {
	return UserDomain(userID)
}

// DomainFromContext determines the domain based on the current user in context.
// Useful for user-scoped operations where the domain is the user's own domain.
func DomainFromContext(ctx context.Context) (Domain, error) {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(string(subject)), nil
}
