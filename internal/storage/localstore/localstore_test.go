package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xburian/volejbal-app-v2/internal/models"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLocalStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("empty store lists no users", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected empty list, got %d users", len(users))
		}
	})

	t.Run("upsert and get", func(t *testing.T) {
		u := &models.User{ID: "u1", Name: "Alice", PhotoURL: "http://x/a.png"}
		if err := store.UpsertUser(ctx, u); err != nil {
			t.Fatalf("UpsertUser failed: %v", err)
		}

		got, err := store.GetUser(ctx, "u1")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got == nil || got.Name != "Alice" || got.PhotoURL != "http://x/a.png" {
			t.Errorf("GetUser = %+v, want Alice", got)
		}
	})

	t.Run("get missing returns nil, nil", func(t *testing.T) {
		got, err := store.GetUser(ctx, "nope")
		if err != nil || got != nil {
			t.Errorf("GetUser(nope) = (%+v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		if err := store.UpsertUser(ctx, &models.User{ID: "u1", Name: "Alicia"}); err != nil {
			t.Fatalf("UpsertUser failed: %v", err)
		}
		users, _ := store.ListUsers(ctx)
		if len(users) != 1 {
			t.Fatalf("expected 1 user after replace, got %d", len(users))
		}
		if users[0].Name != "Alicia" {
			t.Errorf("name = %q, want Alicia", users[0].Name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteUser(ctx, "u1"); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}
		users, _ := store.ListUsers(ctx)
		if len(users) != 0 {
			t.Errorf("expected no users after delete, got %d", len(users))
		}
	})
}

func TestLocalStoreEvents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ev := &models.Event{
		ID:            "e1",
		Title:         "Tuesday game",
		Date:          "2026-05-12",
		Time:          "19:00",
		Location:      "Sokolovna",
		TotalCost:     1200,
		AccountNumber: "123456789/0100",
	}
	if err := store.UpsertEvent(ctx, ev); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}

	got, err := store.GetEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got == nil || got.Title != "Tuesday game" || got.TotalCost != 1200 {
		t.Errorf("GetEvent = %+v", got)
	}

	if err := store.DeleteEvent(ctx, "e1"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	events, _ := store.ListEvents(ctx)
	if len(events) != 0 {
		t.Errorf("expected no events after delete, got %d", len(events))
	}
}

func TestLocalStoreAttendance(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	put := func(eventID, userID string, status models.Status, paid bool) {
		t.Helper()
		err := store.UpsertAttendance(ctx, &models.AttendanceRecord{
			EventID: eventID, UserID: userID, Status: status, HasPaid: paid, Timestamp: 1,
		})
		if err != nil {
			t.Fatalf("UpsertAttendance failed: %v", err)
		}
	}

	put("e1", "u1", models.StatusJoined, false)
	put("e1", "u2", models.StatusMaybe, false)
	put("e2", "u1", models.StatusDeclined, false)

	t.Run("upsert is idempotent on the composite key", func(t *testing.T) {
		put("e1", "u1", models.StatusJoined, true)

		recs, _ := store.ListAttendance(ctx)
		if len(recs) != 3 {
			t.Fatalf("expected 3 records, got %d", len(recs))
		}
		got, _ := store.GetAttendance(ctx, "e1", "u1")
		if got == nil || !got.HasPaid {
			t.Errorf("latest write must win: %+v", got)
		}
	})

	t.Run("filter by event", func(t *testing.T) {
		recs, err := store.ListAttendanceByEvent(ctx, "e1")
		if err != nil {
			t.Fatalf("ListAttendanceByEvent failed: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("expected 2 records for e1, got %d", len(recs))
		}
	})

	t.Run("filter by user", func(t *testing.T) {
		recs, err := store.ListAttendanceByUser(ctx, "u1")
		if err != nil {
			t.Fatalf("ListAttendanceByUser failed: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("expected 2 records for u1, got %d", len(recs))
		}
	})

	t.Run("delete by composite key", func(t *testing.T) {
		if err := store.DeleteAttendance(ctx, "e1", "u1"); err != nil {
			t.Fatalf("DeleteAttendance failed: %v", err)
		}
		got, _ := store.GetAttendance(ctx, "e1", "u1")
		if got != nil {
			t.Errorf("record still present after delete: %+v", got)
		}
		if recs, _ := store.ListAttendance(ctx); len(recs) != 2 {
			t.Errorf("expected 2 records left, got %d", len(recs))
		}
	})
}

func TestLocalStoreReadsDegradeToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupted collection blob", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.UpsertUser(ctx, &models.User{ID: "u1", Name: "Alice"}); err != nil {
			t.Fatalf("UpsertUser failed: %v", err)
		}

		// Clobber the stored array so it no longer decodes.
		if _, err := store.db.Exec("UPDATE collections SET data = 'not json' WHERE name = ?", collectionUsers); err != nil {
			t.Fatalf("failed to corrupt collection: %v", err)
		}

		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Errorf("ListUsers must degrade, not fail: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected empty result from unreadable collection, got %d users", len(users))
		}

		got, err := store.GetUser(ctx, "u1")
		if err != nil || got != nil {
			t.Errorf("GetUser on unreadable collection = (%+v, %v), want (nil, nil)", got, err)
		}

		// Writes must not silently rebuild on top of garbage.
		if err := store.UpsertUser(ctx, &models.User{ID: "u2", Name: "Bob"}); err == nil {
			t.Error("expected write onto unreadable collection to propagate an error")
		}
	})

	t.Run("closed database", func(t *testing.T) {
		store, err := New(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		store.Close()

		if users, err := store.ListUsers(ctx); err != nil || len(users) != 0 {
			t.Errorf("ListUsers on closed store = (%d, %v), want empty and no error", len(users), err)
		}
		if events, err := store.ListEvents(ctx); err != nil || len(events) != 0 {
			t.Errorf("ListEvents on closed store = (%d, %v), want empty and no error", len(events), err)
		}
		if recs, err := store.ListAttendance(ctx); err != nil || len(recs) != 0 {
			t.Errorf("ListAttendance on closed store = (%d, %v), want empty and no error", len(recs), err)
		}
		if recs, err := store.ListAttendanceByEvent(ctx, "e1"); err != nil || len(recs) != 0 {
			t.Errorf("ListAttendanceByEvent on closed store = (%d, %v), want empty and no error", len(recs), err)
		}

		// Write failures still surface.
		if err := store.UpsertEvent(ctx, &models.Event{ID: "e1"}); err == nil {
			t.Error("expected write on closed store to fail")
		}
	})
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.UpsertUser(ctx, &models.User{ID: "u1", Name: "Alice"}); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	users, err := reopened.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Alice" {
		t.Errorf("data lost across reopen: %+v", users)
	}
}
