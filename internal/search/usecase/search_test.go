package usecase_test

import (
	"context"
	"testing"

	"inventory-hub/internal/inventory"
	"inventory-hub/internal/item"
	"inventory-hub/internal/search/usecase"
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

type mockInventorySearcher struct {
	calls int
}

func (m *mockInventorySearcher) SearchInventories(ctx context.Context, query string, limit int) ([]inventory.Summary, error) {
	m.calls++
	return []inventory.Summary{{Inventory: inventory.Inventory{ID: "inv-1", Title: "Laptops"}}}, nil
}

type mockItemSearcher struct {
	calls int
}

func (m *mockItemSearcher) SearchItems(ctx context.Context, query string, limit int) ([]item.Item, error) {
	m.calls++
	return []item.Item{{ID: "item-1", CustomID: "ITEM-000001"}}, nil
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Matches Both Entities", func(t *testing.T) {
		uc := usecase.New(&mockInventorySearcher{}, &mockItemSearcher{}, &mockLogger{})

		out, err := uc.Search(ctx, "laptop")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Inventories) != 1 || len(out.Items) != 1 {
			t.Errorf("got %d inventories, %d items, want 1 each", len(out.Inventories), len(out.Items))
		}
	})

	t.Run("Short Query Skips The Store", func(t *testing.T) {
		inventories := &mockInventorySearcher{}
		items := &mockItemSearcher{}
		uc := usecase.New(inventories, items, &mockLogger{})

		for _, q := range []string{"", "a", " a "} {
			out, err := uc.Search(ctx, q)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", q, err)
			}
			if len(out.Inventories) != 0 || len(out.Items) != 0 {
				t.Errorf("query %q: expected empty result", q)
			}
		}
		if inventories.calls != 0 || items.calls != 0 {
			t.Errorf("store hit for short query: inv=%d item=%d", inventories.calls, items.calls)
		}
	})

	t.Run("Whitespace Is Trimmed", func(t *testing.T) {
		inventories := &mockInventorySearcher{}
		uc := usecase.New(inventories, &mockItemSearcher{}, &mockLogger{})

		if _, err := uc.Search(ctx, "  go  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inventories.calls != 1 {
			t.Errorf("calls = %d, want 1", inventories.calls)
		}
	})
}
