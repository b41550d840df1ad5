package user

import (
	"context"
	"errors"
	"testing"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantMsg string
	}{
		{"empty name", CreateUserRequest{Name: "", Email: "a@b.com"}, MsgFieldsRequired},
		{"empty email", CreateUserRequest{Name: "abc", Email: ""}, MsgFieldsRequired},
		{"both empty", CreateUserRequest{}, MsgFieldsRequired},
		{"empty checked before short name", CreateUserRequest{Name: "ab", Email: ""}, MsgFieldsRequired},
		{"short name", CreateUserRequest{Name: "ab", Email: "a@b.com"}, MsgNameTooShort},
		{"short name checked before email", CreateUserRequest{Name: "ab", Email: "abc.com"}, MsgNameTooShort},
		{"short multibyte name", CreateUserRequest{Name: "éé", Email: "a@b.com"}, MsgNameTooShort},
		{"email without at", CreateUserRequest{Name: "abc", Email: "abc.com"}, MsgEmailInvalid},
		{"valid", CreateUserRequest{Name: "abc", Email: "a@b.com"}, ""},
		{"valid multibyte name", CreateUserRequest{Name: "ééé", Email: "a@b.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreate(&tt.req)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, vErr.Message)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin(&LoginUserRequest{Email: "a@b.com"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	for _, email := range []string{"", "abc.com", "plain"} {
		var vErr *ValidationError
		if err := ValidateLogin(&LoginUserRequest{Email: email}); !errors.As(err, &vErr) {
			t.Errorf("email %q: expected ValidationError, got %v", email, err)
		}
	}
}

func TestService_Register(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, &CreateUserRequest{Name: "abc", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "abc" || user.Email != "a@b.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.AvatarURL != nil {
		t.Errorf("expected absent avatar to stay absent, got %v", *user.AvatarURL)
	}

	_, err = svc.Register(ctx, &CreateUserRequest{Name: "abc", Email: "a@b.com"})
	if !errors.Is(err, ErrEmailAlreadyInUse) {
		t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
	}

	if store.creates != 1 {
		t.Errorf("expected exactly 1 insert, got %d", store.creates)
	}
}

func TestService_Register_InvalidSkipsStore(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	if _, err := svc.Register(context.Background(), &CreateUserRequest{Name: "ab", Email: "a@b.com"}); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if store.gets != 0 || store.creates != 0 {
		t.Errorf("expected no store calls, got %d reads and %d writes", store.gets, store.creates)
	}
}

func TestService_Register_StoreErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("lookup failure", func(t *testing.T) {
		store := newMemStore()
		store.getErr = boom
		svc := NewService(store)

		_, err := svc.Register(context.Background(), &CreateUserRequest{Name: "abc", Email: "a@b.com"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped lookup error, got %v", err)
		}
		if store.creates != 0 {
			t.Errorf("expected no insert after failed lookup, got %d", store.creates)
		}
	})

	t.Run("insert failure", func(t *testing.T) {
		store := newMemStore()
		store.createErr = boom
		svc := NewService(store)

		_, err := svc.Register(context.Background(), &CreateUserRequest{Name: "abc", Email: "a@b.com"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped insert error, got %v", err)
		}
		if errors.Is(err, ErrEmailAlreadyInUse) {
			t.Error("insert failure must not read as a conflict")
		}
	})

	t.Run("insert race", func(t *testing.T) {
		store := newMemStore()
		store.createErr = ErrEmailAlreadyInUse
		svc := NewService(store)

		_, err := svc.Register(context.Background(), &CreateUserRequest{Name: "abc", Email: "a@b.com"})
		if !errors.Is(err, ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
	})
}

func TestService_Login(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &CreateUserRequest{Name: "abc", Email: "a@b.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginUserRequest{Email: "a@b.com"}); err != nil {
		t.Errorf("expected login to succeed, got %v", err)
	}

	if _, err := svc.Login(ctx, &LoginUserRequest{Email: "x@y.com"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	store.getErr = errors.New("timeout")
	_, err := svc.Login(ctx, &LoginUserRequest{Email: "a@b.com"})
	if err == nil || errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected wrapped lookup error, got %v", err)
	}
}
