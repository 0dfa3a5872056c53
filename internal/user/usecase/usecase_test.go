package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
	repo "inventory-hub/internal/user/repository"
	"inventory-hub/internal/user/usecase"
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

type mockRepo struct {
	users   map[string]user.User // keyed by ID
	seq     int
	deleted []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]user.User{}}
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	for _, u := range m.users {
		if u.Email == opt.Email {
			return user.User{}, repo.ErrDuplicateEmail
		}
	}
	m.seq++
	u := user.User{
		ID:           fmt.Sprintf("user-%d", m.seq),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Image:        opt.Image,
		Role:         opt.Role,
		CreatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	for _, u := range m.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		return u, nil
	}
	return user.User{}, nil
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]user.AdminUser, error) {
	var out []user.AdminUser
	for _, u := range m.users {
		out = append(out, user.AdminUser{User: u})
	}
	return out, nil
}

func (m *mockRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	u, ok := m.users[opt.ID]
	if !ok {
		return user.User{}, nil
	}
	if opt.Name != nil {
		u.Name = *opt.Name
	}
	if opt.Image != nil {
		u.Image = *opt.Image
	}
	if opt.Role != nil {
		u.Role = *opt.Role
	}
	if opt.Blocked != nil {
		u.Blocked = *opt.Blocked
	}
	m.users[opt.ID] = u
	return u, nil
}

func (m *mockRepo) DeleteUser(ctx context.Context, id string) error {
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepo) CountInventories(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

type mockSessions struct {
	revoked map[string]bool
}

func newMockSessions() *mockSessions {
	return &mockSessions{revoked: map[string]bool{}}
}

func (m *mockSessions) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.revoked[tokenID] = true
	return nil
}

func (m *mockSessions) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return m.revoked[tokenID], nil
}

type mockJWT struct {
	issued int
}

func (m *mockJWT) Issue(sc model.Scope) (string, error) {
	m.issued++
	return "token-for-" + sc.UserID, nil
}

func (m *mockJWT) Verify(token string) (model.Scope, error) {
	return model.Scope{}, errors.New("not implemented")
}

func newUseCase(store *mockRepo) user.UseCase {
	return usecase.New(store, newMockSessions(), nil, &mockJWT{}, time.Hour, &mockLogger{})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc := newUseCase(newMockRepo())

		out, err := uc.Register(ctx, user.RegisterInput{Name: "Alice", Email: "  Alice@Example.COM ", Password: "hunter22"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
		if out.User.Email != "alice@example.com" {
			t.Errorf("email = %q, want lowercased and trimmed", out.User.Email)
		}
		if out.User.Role != model.RoleUser {
			t.Errorf("role = %q, want USER", out.User.Role)
		}
		if out.User.PasswordHash == "hunter22" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		uc := newUseCase(newMockRepo())

		if _, err := uc.Register(ctx, user.RegisterInput{Email: "a@b.com", Password: "x"}); err != nil {
			t.Fatalf("first register: %v", err)
		}
		if _, err := uc.Register(ctx, user.RegisterInput{Email: "A@B.com", Password: "y"}); !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("got %v, want ErrEmailTaken", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*mockRepo, user.UseCase) {
		t.Helper()
		store := newMockRepo()
		uc := newUseCase(store)
		if _, err := uc.Register(ctx, user.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return store, uc
	}

	t.Run("Success", func(t *testing.T) {
		_, uc := seed(t)

		out, err := uc.Login(ctx, user.LoginInput{Email: "ALICE@example.com", Password: "hunter22"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, uc := seed(t)

		if _, err := uc.Login(ctx, user.LoginInput{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, uc := seed(t)

		if _, err := uc.Login(ctx, user.LoginInput{Email: "nobody@example.com", Password: "hunter22"}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("OAuth Only Account Has No Password", func(t *testing.T) {
		store := newMockRepo()
		uc := newUseCase(store)
		if _, err := store.CreateUser(ctx, repo.CreateUserOptions{Email: "sso@example.com", Role: model.RoleUser}); err != nil {
			t.Fatalf("seed: %v", err)
		}

		if _, err := uc.Login(ctx, user.LoginInput{Email: "sso@example.com", Password: ""}); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Revokes The Token", func(t *testing.T) {
		sessions := newMockSessions()
		uc := usecase.New(newMockRepo(), sessions, nil, &mockJWT{}, time.Hour, &mockLogger{})

		if err := uc.Logout(ctx, model.Scope{UserID: "user-1", TokenID: "jti-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sessions.revoked["jti-1"] {
			t.Error("token was not revoked")
		}
	})

	t.Run("No Token Is A No Op", func(t *testing.T) {
		sessions := newMockSessions()
		uc := usecase.New(newMockRepo(), sessions, nil, &mockJWT{}, time.Hour, &mockLogger{})

		if err := uc.Logout(ctx, model.Scope{UserID: "user-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sessions.revoked) != 0 {
			t.Error("unexpected revocation")
		}
	})
}

func TestGoogleDisabled(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(newMockRepo())

	if url := uc.GoogleAuthURL("state"); url != "" {
		t.Errorf("auth URL = %q, want empty when not configured", url)
	}
	if _, err := uc.LoginWithGoogle(ctx, "code"); !errors.Is(err, user.ErrOAuthDisabled) {
		t.Errorf("got %v, want ErrOAuthDisabled", err)
	}
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()
	admin := model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
	regular := model.Scope{UserID: "user-1", Role: model.RoleUser}

	seed := func(t *testing.T) (*mockRepo, user.UseCase, user.User) {
		t.Helper()
		store := newMockRepo()
		uc := newUseCase(store)
		u, err := store.CreateUser(ctx, repo.CreateUserOptions{Name: "Bob", Email: "bob@example.com", Role: model.RoleUser})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return store, uc, u
	}

	t.Run("Set Role Promotes", func(t *testing.T) {
		_, uc, u := seed(t)

		out, err := uc.AdminSetRole(ctx, admin, u.ID, model.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Role != model.RoleAdmin {
			t.Errorf("role = %q, want ADMIN", out.User.Role)
		}
	})

	t.Run("Set Blocked", func(t *testing.T) {
		_, uc, u := seed(t)

		out, err := uc.AdminSetBlocked(ctx, admin, u.ID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.User.Blocked {
			t.Error("user not blocked")
		}
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		store, uc, u := seed(t)

		if _, err := uc.AdminSetRole(ctx, regular, u.ID, model.RoleAdmin); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("got %v, want ErrForbidden", err)
		}
		if err := uc.AdminDeleteUser(ctx, regular, u.ID); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("got %v, want ErrForbidden", err)
		}
		if len(store.deleted) != 0 {
			t.Error("user was deleted despite forbidden caller")
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		_, uc, _ := seed(t)

		if _, err := uc.AdminSetRole(ctx, admin, "missing", model.RoleAdmin); !errors.Is(err, user.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store, uc, u := seed(t)

		if err := uc.AdminDeleteUser(ctx, admin, u.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.deleted) != 1 || store.deleted[0] != u.ID {
			t.Errorf("deleted = %v, want [%s]", store.deleted, u.ID)
		}
	})

	t.Run("List Counts Admins", func(t *testing.T) {
		store, uc, _ := seed(t)
		if _, err := store.CreateUser(ctx, repo.CreateUserOptions{Name: "Root", Email: "root@example.com", Role: model.RoleAdmin}); err != nil {
			t.Fatalf("seed admin: %v", err)
		}

		out, err := uc.AdminListUsers(ctx, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 {
			t.Errorf("total = %d, want 2", out.Total)
		}
		if out.Admins != 1 {
			t.Errorf("admins = %d, want 1", out.Admins)
		}
	})
}
