package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/pkg/reqctx"
)

// mockClaims implements reqctx.AuthClaims for testing
type mockClaims struct {
	userID uuid.UUID
}

func (m *mockClaims) GetUserID() uuid.UUID     { return m.userID }
func (m *mockClaims) GetSessionID() *uuid.UUID { return nil }
func (m *mockClaims) GetRole() string          { return "" }
func (m *mockClaims) GetTokenType() string     { return "access" }
func (m *mockClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims in context",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: uuid.Nil})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	validUUID := uuid.New()

	t.Run("returns id when claims exist", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
		got, err := UserIDFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != validUUID {
			t.Errorf("UserIDFromContext() = %v, want %v", got, validUUID)
		}
	})

	t.Run("errors when no claims", func(t *testing.T) {
		_, err := UserIDFromContext(context.Background())
		if err == nil {
			t.Error("Expected error but got nil")
		}
	})
}

func TestUserSelfDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserSelfDomain(userID)
	if result != expected {
		t.Errorf("UserSelfDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestDomainFromContext(t *testing.T) {
	validUUID := uuid.New()

	t.Run("builds user domain from claims", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
		got, err := DomainFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := UserDomain(validUUID.String())
		if got != want {
			t.Errorf("DomainFromContext() = %q, want %q", got, want)
		}
	})

	t.Run("errors when no claims", func(t *testing.T) {
		_, err := DomainFromContext(context.Background())
		if err == nil {
			t.Error("Expected error but got nil")
		}
	})
}
