package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"inventory-hub/internal/comment"
	repo "inventory-hub/internal/comment/repository"
	"inventory-hub/internal/comment/usecase"
	"inventory-hub/internal/inventory"
	"inventory-hub/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockInventoryReader struct{}

func (m *mockInventoryReader) GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error) {
	if id == "inv-1" {
		return inventory.Inventory{ID: "inv-1", Title: "Office Laptops"}, nil
	}
	return inventory.Inventory{}, nil
}

type mockRepo struct {
	comments map[string]comment.Comment
	seq      int
	deleted  []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{comments: map[string]comment.Comment{}}
}

func (m *mockRepo) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (comment.Comment, error) {
	m.seq++
	cm := comment.Comment{
		ID:          fmt.Sprintf("cm-%d", m.seq),
		InventoryID: opt.InventoryID,
		Author:      comment.Author{ID: opt.AuthorID},
		Body:        opt.Body,
		CreatedAt:   time.Now(),
	}
	m.comments[cm.ID] = cm
	return cm, nil
}

func (m *mockRepo) GetOneComment(ctx context.Context, id string) (comment.Comment, error) {
	return m.comments[id], nil
}

func (m *mockRepo) ListComments(ctx context.Context, inventoryID string) ([]comment.Comment, error) {
	var out []comment.Comment
	for _, cm := range m.comments {
		if cm.InventoryID == inventoryID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (m *mockRepo) DeleteComment(ctx context.Context, id string) error {
	delete(m.comments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	author := model.Scope{UserID: "user-1", Role: model.RoleUser}

	t.Run("Success", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), &mockInventoryReader{}, &mockLogger{})

		cm, err := uc.Create(ctx, author, comment.CreateInput{InventoryID: "inv-1", Body: "  looks good  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cm.Body != "looks good" {
			t.Errorf("body = %q, want trimmed", cm.Body)
		}
		if cm.Author.ID != "user-1" {
			t.Errorf("author = %q, want user-1", cm.Author.ID)
		}
	})

	t.Run("Blank Body Rejected", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), &mockInventoryReader{}, &mockLogger{})

		if _, err := uc.Create(ctx, author, comment.CreateInput{InventoryID: "inv-1", Body: "   "}); !errors.Is(err, comment.ErrEmptyBody) {
			t.Errorf("got %v, want ErrEmptyBody", err)
		}
	})

	t.Run("Unknown Inventory", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), &mockInventoryReader{}, &mockLogger{})

		if _, err := uc.Create(ctx, author, comment.CreateInput{InventoryID: "missing", Body: "hi"}); !errors.Is(err, comment.ErrInventoryNotFound) {
			t.Errorf("got %v, want ErrInventoryNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	author := model.Scope{UserID: "user-1", Role: model.RoleUser}

	seed := func(t *testing.T) (*mockRepo, comment.Comment) {
		t.Helper()
		store := newMockRepo()
		uc := usecase.New(store, &mockInventoryReader{}, &mockLogger{})
		cm, err := uc.Create(ctx, author, comment.CreateInput{InventoryID: "inv-1", Body: "hello"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return store, cm
	}

	t.Run("Author Can Delete", func(t *testing.T) {
		store, cm := seed(t)
		uc := usecase.New(store, &mockInventoryReader{}, &mockLogger{})

		if err := uc.Delete(ctx, author, cm.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.deleted) != 1 {
			t.Errorf("deleted %d comments, want 1", len(store.deleted))
		}
	})

	t.Run("Admin Can Delete", func(t *testing.T) {
		store, cm := seed(t)
		uc := usecase.New(store, &mockInventoryReader{}, &mockLogger{})

		admin := model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
		if err := uc.Delete(ctx, admin, cm.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Other User Forbidden", func(t *testing.T) {
		store, cm := seed(t)
		uc := usecase.New(store, &mockInventoryReader{}, &mockLogger{})

		other := model.Scope{UserID: "user-2", Role: model.RoleUser}
		if err := uc.Delete(ctx, other, cm.ID); !errors.Is(err, comment.ErrForbidden) {
			t.Errorf("got %v, want ErrForbidden", err)
		}
		if len(store.deleted) != 0 {
			t.Errorf("comment was deleted despite forbidden caller")
		}
	})

	t.Run("Unknown Comment", func(t *testing.T) {
		store, _ := seed(t)
		uc := usecase.New(store, &mockInventoryReader{}, &mockLogger{})

		if err := uc.Delete(ctx, author, "missing"); !errors.Is(err, comment.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
