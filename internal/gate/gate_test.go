package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
	"github.com/azurtoy/voidstation/internal/identity"
)

type fakeUnlocker struct {
	unlocked map[string]int
	err      error
}

func (f *fakeUnlocker) Unlock(id string) error {
	if f.err != nil {
		return f.err
	}
	if f.unlocked == nil {
		f.unlocked = make(map[string]int)
	}
	f.unlocked[id]++
	return nil
}

func newTestGate(t *testing.T, profiles ProfileUnlocker) *Gate {
	t.Helper()
	g, err := New(Config{
		SitePassword: "orbital-secret",
		UnlockCode:   "1234",
		CookieTTL:    7 * 24 * time.Hour,
	}, profiles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNew_RequiresSecrets(t *testing.T) {
	if _, err := New(Config{UnlockCode: "x"}, nil); err == nil {
		t.Error("missing site password should fail")
	}
	if _, err := New(Config{SitePassword: "x"}, nil); err == nil {
		t.Error("missing unlock code should fail")
	}
}

func TestAuthenticateSite(t *testing.T) {
	g := newTestGate(t, &fakeUnlocker{})

	if err := g.AuthenticateSite("orbital-secret"); err != nil {
		t.Errorf("correct password declined: %v", err)
	}

	for _, guess := range []string{"wrong", "", "orbital-secret ", "ORBITAL-SECRET"} {
		err := g.AuthenticateSite(guess)
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("AuthenticateSite(%q) err = %v, want ErrUnauthorized", guess, err)
		}
		if err != nil && err.Error() == "" {
			t.Errorf("declined result must carry a message")
		}
	}
}

func TestUnlock_RequiresIdentityBeforeCode(t *testing.T) {
	profiles := &fakeUnlocker{}
	g := newTestGate(t, profiles)

	// Even the correct code must be refused without an identity.
	err := g.Unlock(context.Background(), identity.User{}, "1234")
	if !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if len(profiles.unlocked) != 0 {
		t.Error("store must not be touched for unauthenticated callers")
	}
}

func TestUnlock_WrongCode(t *testing.T) {
	profiles := &fakeUnlocker{}
	g := newTestGate(t, profiles)

	user := identity.User{ID: "user-1", Email: "a@lakeheadu.ca"}
	err := g.Unlock(context.Background(), user, "0000")
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if len(profiles.unlocked) != 0 {
		t.Error("wrong code must not write to the store")
	}
}

func TestUnlock_SuccessAndIdempotent(t *testing.T) {
	profiles := &fakeUnlocker{}
	g := newTestGate(t, profiles)

	user := identity.User{ID: "user-1"}
	for i := 0; i < 2; i++ {
		if err := g.Unlock(context.Background(), user, "1234"); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}
	if profiles.unlocked["user-1"] != 2 {
		t.Errorf("unlock writes = %d, want 2 (each a no-op rewrite)", profiles.unlocked["user-1"])
	}
}

func TestUnlock_StoreFailure(t *testing.T) {
	profiles := &fakeUnlocker{err: errors.New("disk gone")}
	g := newTestGate(t, profiles)

	err := g.Unlock(context.Background(), identity.User{ID: "user-1"}, "1234")
	if err == nil {
		t.Fatal("store failure must surface")
	}
}
