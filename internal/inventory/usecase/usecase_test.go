package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"inventory-hub/internal/inventory"
	"inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/inventory/usecase"
	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
	userRepo "inventory-hub/internal/user/repository"
	"inventory-hub/pkg/customid"
)

// mock dependencies

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

// mockRepo keeps a single inventory in memory and honors the conditional
// write contract of UpdateInventory.
type mockRepo struct {
	inv      inventory.Inventory
	fields   []inventory.Field
	grants   []inventory.AccessGrant
	tags     []inventory.Tag
	itemRows []repository.ItemFieldRow

	updateCalls int
	statsReads  int
}

func (m *mockRepo) CreateInventory(ctx context.Context, opt repository.CreateInventoryOptions) (inventory.Inventory, error) {
	m.inv = inventory.Inventory{
		ID:        "inv-1",
		Title:     opt.Title,
		CreatorID: opt.CreatorID,
		Version:   1,
	}
	json.Unmarshal(opt.CustomIDFormat, &m.inv.CustomIDFormat)
	return m.inv, nil
}

func (m *mockRepo) GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error) {
	if id != m.inv.ID {
		return inventory.Inventory{}, nil
	}
	return m.inv, nil
}

func (m *mockRepo) ListInventories(ctx context.Context, opt repository.ListInventoriesOptions) ([]inventory.Summary, error) {
	if m.inv.ID == "" {
		return nil, nil
	}
	return []inventory.Summary{{Inventory: m.inv, ItemCount: len(m.itemRows)}}, nil
}

func (m *mockRepo) UpdateInventory(ctx context.Context, opt repository.UpdateInventoryOptions) (inventory.Inventory, error) {
	m.updateCalls++
	if opt.ID != m.inv.ID {
		return inventory.Inventory{}, repository.ErrRowNotFound
	}
	if opt.ExpectedVersion != m.inv.Version {
		return inventory.Inventory{}, repository.ErrVersionConflict
	}
	if opt.Title != nil {
		m.inv.Title = *opt.Title
	}
	if opt.Description != nil {
		m.inv.Description = *opt.Description
	}
	if opt.Category != nil {
		m.inv.Category = *opt.Category
	}
	if opt.IsPublic != nil {
		m.inv.IsPublic = *opt.IsPublic
	}
	if opt.CustomIDFormat != nil {
		json.Unmarshal(opt.CustomIDFormat, &m.inv.CustomIDFormat)
	}
	m.inv.Version++
	return m.inv, nil
}

func (m *mockRepo) DeleteInventory(ctx context.Context, id string) error {
	m.inv = inventory.Inventory{}
	return nil
}

func (m *mockRepo) SearchInventories(ctx context.Context, query string, limit int) ([]inventory.Summary, error) {
	return nil, nil
}

func (m *mockRepo) CountItems(ctx context.Context, inventoryID string) (int, error) {
	return len(m.itemRows), nil
}

func (m *mockRepo) ListFields(ctx context.Context, inventoryID string) ([]inventory.Field, error) {
	return m.fields, nil
}

func (m *mockRepo) ReplaceFields(ctx context.Context, inventoryID string, fields []repository.FieldOptions) error {
	m.fields = nil
	for _, f := range fields {
		m.fields = append(m.fields, inventory.Field{
			ID:          "field-" + f.Title,
			InventoryID: inventoryID,
			Kind:        f.Kind,
			Slot:        f.Slot,
			Title:       f.Title,
			Order:       f.Order,
		})
	}
	return nil
}

func (m *mockRepo) CreateAccessGrant(ctx context.Context, inventoryID, userID string) (inventory.AccessGrant, error) {
	for _, g := range m.grants {
		if g.UserID == userID {
			return inventory.AccessGrant{}, repository.ErrDuplicateLink
		}
	}
	g := inventory.AccessGrant{ID: "grant-" + userID, InventoryID: inventoryID, UserID: userID}
	m.grants = append(m.grants, g)
	return g, nil
}

func (m *mockRepo) GetOneAccessGrant(ctx context.Context, opt repository.GetOneAccessGrantOptions) (inventory.AccessGrant, error) {
	for _, g := range m.grants {
		if opt.ID != "" && g.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && g.UserID != opt.UserID {
			continue
		}
		return g, nil
	}
	return inventory.AccessGrant{}, nil
}

func (m *mockRepo) ListAccessGrants(ctx context.Context, inventoryID string) ([]inventory.AccessGrant, error) {
	return m.grants, nil
}

func (m *mockRepo) DeleteAccessGrant(ctx context.Context, grantID string) error {
	for i, g := range m.grants {
		if g.ID == grantID {
			m.grants = append(m.grants[:i], m.grants[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) UpsertTag(ctx context.Context, name string) (inventory.Tag, error) {
	for _, t := range m.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return inventory.Tag{ID: "tag-" + name, Name: name}, nil
}

func (m *mockRepo) LinkTag(ctx context.Context, inventoryID, tagID string) error {
	for _, t := range m.tags {
		if t.ID == tagID {
			return repository.ErrDuplicateLink
		}
	}
	m.tags = append(m.tags, inventory.Tag{ID: tagID})
	return nil
}

func (m *mockRepo) UnlinkTag(ctx context.Context, inventoryID, tagID string) error {
	for i, t := range m.tags {
		if t.ID == tagID {
			m.tags = append(m.tags[:i], m.tags[i+1:]...)
			return nil
		}
	}
	return repository.ErrRowNotFound
}

func (m *mockRepo) ListTags(ctx context.Context, inventoryID string) ([]inventory.Tag, error) {
	return m.tags, nil
}

func (m *mockRepo) SearchTags(ctx context.Context, prefix string, limit int) ([]inventory.TagWithCount, error) {
	return nil, nil
}

func (m *mockRepo) ListItemFieldRows(ctx context.Context, inventoryID string) ([]repository.ItemFieldRow, error) {
	m.statsReads++
	return m.itemRows, nil
}

type mockUserRepo struct {
	users map[string]user.User
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (user.User, error) {
	return user.User{}, errors.New("not implemented")
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (user.User, error) {
	return m.users[opt.ID], nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]user.AdminUser, error) { return nil, nil }

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (user.User, error) {
	return user.User{}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

func (m *mockUserRepo) CountInventories(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func newFixture() (*mockRepo, inventory.UseCase) {
	repo := &mockRepo{
		inv: inventory.Inventory{
			ID:             "inv-1",
			Title:          "Office Laptops",
			CreatorID:      "owner-1",
			CustomIDFormat: customid.DefaultFormat(),
			Version:        5,
		},
	}
	users := &mockUserRepo{users: map[string]user.User{
		"owner-1": {ID: "owner-1", Name: "Owner", Email: "owner@example.com"},
		"other-1": {ID: "other-1", Name: "Other", Email: "other@example.com"},
	}}
	uc := usecase.New(repo, users, 16, time.Minute, &mockLogger{})
	return repo, uc
}

func intPtr(i int) *int { return &i }

var ownerScope = model.Scope{UserID: "owner-1", Role: model.RoleUser}
var adminScope = model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
var strangerScope = model.Scope{UserID: "other-1", Role: model.RoleUser}

func TestUpdateVersionGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching Version Succeeds And Bumps By One", func(t *testing.T) {
		repo, uc := newFixture()

		out, err := uc.Update(ctx, ownerScope, inventory.UpdateInput{
			ID:      "inv-1",
			Title:   "Office Laptops 2026",
			Version: intPtr(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.Summary.Inventory.Version; got != 6 {
			t.Errorf("version = %d, want 6", got)
		}
		if got := out.Summary.Inventory.Title; got != "Office Laptops 2026" {
			t.Errorf("title = %q", got)
		}
		if repo.updateCalls != 1 {
			t.Errorf("updateCalls = %d, want 1", repo.updateCalls)
		}
	})

	t.Run("Stale Version Rejected Before Write", func(t *testing.T) {
		repo, uc := newFixture()
		repo.inv.Version = 6 // another editor already saved

		_, err := uc.Update(ctx, ownerScope, inventory.UpdateInput{
			ID:      "inv-1",
			Title:   "stale edit",
			Version: intPtr(5),
		})
		if !errors.Is(err, inventory.ErrVersionConflict) {
			t.Fatalf("err = %v, want ErrVersionConflict", err)
		}
		if repo.updateCalls != 0 {
			t.Errorf("updateCalls = %d, want 0 (pre-check must short-circuit)", repo.updateCalls)
		}
		if repo.inv.Title != "Office Laptops" {
			t.Errorf("title changed to %q despite conflict", repo.inv.Title)
		}
	})

	t.Run("Nil Version Skips The Check", func(t *testing.T) {
		_, uc := newFixture()

		out, err := uc.Update(ctx, ownerScope, inventory.UpdateInput{
			ID:    "inv-1",
			Title: "forced update",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.Summary.Inventory.Version; got != 6 {
			t.Errorf("version = %d, want 6 (accepted writes always bump)", got)
		}
	})

	t.Run("Store Level Conflict Is Terminal", func(t *testing.T) {
		repo, _ := newFixture()

		// Race lost between read and write: the conditional statement sees a
		// newer stored version and writes nothing.
		_, err := repo.UpdateInventory(ctx, repository.UpdateInventoryOptions{ID: "inv-1", ExpectedVersion: 4})
		if !errors.Is(err, repository.ErrVersionConflict) {
			t.Fatalf("repo err = %v, want ErrVersionConflict", err)
		}
		if repo.inv.Version != 5 {
			t.Errorf("version = %d, want unchanged 5", repo.inv.Version)
		}
	})

	t.Run("Unknown Inventory", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.Update(ctx, ownerScope, inventory.UpdateInput{ID: "missing", Title: "x"})
		if !errors.Is(err, inventory.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("Non Owner Forbidden", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.Update(ctx, strangerScope, inventory.UpdateInput{ID: "inv-1", Title: "x"})
		if !errors.Is(err, inventory.ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("Admin May Update", func(t *testing.T) {
		_, uc := newFixture()

		out, err := uc.Update(ctx, adminScope, inventory.UpdateInput{ID: "inv-1", Title: "admin edit", Version: intPtr(5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.Inventory.Title != "admin edit" {
			t.Errorf("title = %q", out.Summary.Inventory.Title)
		}
	})
}

func TestReplaceFormat(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Format Bumps Version", func(t *testing.T) {
		_, uc := newFixture()

		format := []customid.Element{
			{Kind: customid.KindText, Value: "BOOK-"},
			{Kind: customid.KindSequence, Format: "0000"},
		}
		out, err := uc.ReplaceFormat(ctx, ownerScope, "inv-1", format)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.Summary.Inventory.Version; got != 6 {
			t.Errorf("version = %d, want 6", got)
		}
		if len(out.Summary.Inventory.CustomIDFormat) != 2 {
			t.Errorf("format len = %d, want 2", len(out.Summary.Inventory.CustomIDFormat))
		}
	})

	t.Run("Malformed Format Rejected Before Write", func(t *testing.T) {
		repo, uc := newFixture()

		tooMany := make([]customid.Element, customid.MaxElements+1)
		for i := range tooMany {
			tooMany[i] = customid.Element{Kind: customid.KindText, Value: "X"}
		}
		_, err := uc.ReplaceFormat(ctx, ownerScope, "inv-1", tooMany)
		if !errors.Is(err, inventory.ErrInvalidFormat) {
			t.Fatalf("err = %v, want ErrInvalidFormat", err)
		}
		if repo.updateCalls != 0 {
			t.Errorf("updateCalls = %d, want 0", repo.updateCalls)
		}
		if repo.inv.Version != 5 {
			t.Errorf("version = %d, want unchanged 5", repo.inv.Version)
		}
	})

	t.Run("Only Owner Or Admin", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.ReplaceFormat(ctx, strangerScope, "inv-1", customid.DefaultFormat())
		if !errors.Is(err, inventory.ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})
}

func TestReplaceFields(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns Slots Per Kind", func(t *testing.T) {
		repo, uc := newFixture()

		out, err := uc.ReplaceFields(ctx, ownerScope, "inv-1", []inventory.FieldInput{
			{Kind: inventory.FieldString, Title: "Model"},
			{Kind: inventory.FieldNumber, Title: "Price"},
			{Kind: inventory.FieldString, Title: "Vendor"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Fields) != 3 {
			t.Fatalf("fields = %d, want 3", len(out.Fields))
		}
		if repo.fields[0].Slot != 1 || repo.fields[2].Slot != 2 {
			t.Errorf("string slots = %d,%d, want 1,2", repo.fields[0].Slot, repo.fields[2].Slot)
		}
		if repo.fields[1].Slot != 1 {
			t.Errorf("number slot = %d, want 1", repo.fields[1].Slot)
		}
	})

	t.Run("Fourth Field Of A Kind Rejected", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.ReplaceFields(ctx, ownerScope, "inv-1", []inventory.FieldInput{
			{Kind: inventory.FieldString, Title: "A"},
			{Kind: inventory.FieldString, Title: "B"},
			{Kind: inventory.FieldString, Title: "C"},
			{Kind: inventory.FieldString, Title: "D"},
		})
		if !errors.Is(err, inventory.ErrTooManyFields) {
			t.Fatalf("err = %v, want ErrTooManyFields", err)
		}
	})
}

func TestGrantAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("Grant And Duplicate", func(t *testing.T) {
		_, uc := newFixture()

		g, err := uc.GrantAccess(ctx, ownerScope, "inv-1", "other-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.UserID != "other-1" {
			t.Errorf("grant user = %q", g.UserID)
		}

		_, err = uc.GrantAccess(ctx, ownerScope, "inv-1", "other-1")
		if !errors.Is(err, inventory.ErrAlreadyGranted) {
			t.Fatalf("err = %v, want ErrAlreadyGranted", err)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.GrantAccess(ctx, ownerScope, "inv-1", "ghost")
		if !errors.Is(err, user.ErrNotFound) {
			t.Fatalf("err = %v, want user.ErrNotFound", err)
		}
	})
}

func TestStatsCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Read Hits Cache", func(t *testing.T) {
		repo, uc := newFixture()
		price := 999.0
		repo.itemRows = []repository.ItemFieldRow{
			{Numbers: [3]*float64{&price}},
		}
		repo.fields = []inventory.Field{
			{Kind: inventory.FieldNumber, Slot: 1, Title: "Price"},
		}

		first, err := uc.Stats(ctx, "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.TotalItems != 1 || len(first.NumberFields) != 1 {
			t.Fatalf("stats = %+v", first)
		}
		if got := first.NumberFields[0].Average; got != 999.0 {
			t.Errorf("average = %v, want 999", got)
		}

		if _, err := uc.Stats(ctx, "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.statsReads != 1 {
			t.Errorf("statsReads = %d, want 1 (second call should hit cache)", repo.statsReads)
		}
	})

	t.Run("Version Bump Invalidates", func(t *testing.T) {
		repo, uc := newFixture()

		if _, err := uc.Stats(ctx, "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Update(ctx, ownerScope, inventory.UpdateInput{ID: "inv-1", Title: "renamed"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Stats(ctx, "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.statsReads != 2 {
			t.Errorf("statsReads = %d, want 2 (new version is a new cache key)", repo.statsReads)
		}
	})
}
