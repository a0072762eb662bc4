package service

import (
	"context"
	"testing"
)

func TestCreateUserDuplicateName(t *testing.T) {
	users, _, _ := setupServices(t)
	ctx := context.Background()

	if _, err := users.CreateUser(ctx, "Alice", ""); err != nil {
		t.Fatalf("CreateUser(Alice) failed: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"exact duplicate", "Alice", ErrDuplicateName},
		{"case-insensitive duplicate", "alice", ErrDuplicateName},
		{"trimmed duplicate", "  alice  ", ErrDuplicateName},
		{"different name is fine", "Bob", nil},
		{"blank name is rejected", "   ", ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.CreateUser(ctx, tt.input, "")
			if err != tt.wantErr {
				t.Errorf("CreateUser(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCreateUserStoresTrimmedName(t *testing.T) {
	users, _, _ := setupServices(t)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "  Carol  ", "")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Name != "Carol" {
		t.Errorf("stored name = %q, want %q", user.Name, "Carol")
	}
	if user.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestUpdateUser(t *testing.T) {
	users, _, _ := setupServices(t)
	ctx := context.Background()

	user, _ := users.CreateUser(ctx, "Alice", "http://x/old.png")

	newName := "Alice B."
	updated, err := users.UpdateUser(ctx, user.ID, UserUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Name != "Alice B." {
		t.Errorf("name = %q, want %q", updated.Name, "Alice B.")
	}
	if updated.PhotoURL != "http://x/old.png" {
		t.Errorf("photo must survive a name-only update, got %q", updated.PhotoURL)
	}

	if _, err := users.UpdateUser(ctx, "nope", UserUpdate{Name: &newName}); err != ErrUserNotFound {
		t.Errorf("UpdateUser(nope) = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserRejectsBlankName(t *testing.T) {
	users, _, _ := setupServices(t)
	ctx := context.Background()

	user, _ := users.CreateUser(ctx, "Alice", "")

	blank := "   "
	if _, err := users.UpdateUser(ctx, user.ID, UserUpdate{Name: &blank}); err != ErrEmptyName {
		t.Fatalf("UpdateUser(blank name) = %v, want ErrEmptyName", err)
	}

	// The stored name must be untouched by the rejected rename.
	got, err := users.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("name after rejected rename = %q, want %q", got.Name, "Alice")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	users, _, _ := setupServices(t)
	if err := users.DeleteUser(context.Background(), "nope"); err != ErrUserNotFound {
		t.Errorf("DeleteUser(nope) = %v, want ErrUserNotFound", err)
	}
}
