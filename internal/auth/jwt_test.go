package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

var testUser = &models.User{ID: "u1", Name: "Alice"}

func TestGenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(testUser)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Name != "Alice" {
		t.Errorf("claims = %+v, want u1/Alice", claims)
	}
}

func TestValidateRejections(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage input",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTManager("other-secret", time.Hour)
				token, err := other.Generate(testUser)
				if err != nil {
					t.Fatalf("Generate failed: %v", err)
				}
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTManager("test-secret", -time.Minute)
				token, err := expired.Generate(testUser)
				if err != nil {
					t.Fatalf("Generate failed: %v", err)
				}
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Validate(tt.token(t))
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate = %v, want ErrInvalidToken", err)
			}
		})
	}
}
