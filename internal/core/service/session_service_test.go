package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory key-value store stub (shared by the service tests)
// ---------------------------------------------------------------------------

type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error // if set, Set returns this error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) put(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(raw)
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// SignIn tests
// ---------------------------------------------------------------------------

func TestSessionService_SignIn_PersistsIdentity(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)

	user, err := svc.SignIn(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "mock-user-123" {
		t.Errorf("expected mock identity, got %q", user.ID)
	}
	if user.Membership != domain.TierSilver {
		t.Errorf("expected silver tier, got %q", user.Membership)
	}
	if _, ok := store.data[ports.KeyCurrentUser]; !ok {
		t.Error("session must be persisted under the current-user key")
	}
}

func TestSessionService_SignIn_SetsWelcomedFlagOnce(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)

	if _, err := svc.SignIn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if string(store.data[ports.KeyWelcomed]) != "true" {
		t.Errorf("expected welcomed-flag true, got %q", store.data[ports.KeyWelcomed])
	}
}

func TestSessionService_SignIn_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("disk full")
	svc := NewSessionService(store, 0, discardLogger)

	if _, err := svc.SignIn(context.Background()); err == nil {
		t.Fatal("expected error when persistence fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Restore tests
// ---------------------------------------------------------------------------

func TestSessionService_Restore_NoSession(t *testing.T) {
	svc := NewSessionService(newMemStore(), 0, discardLogger)

	_, err := svc.Restore(context.Background())
	if !errors.Is(err, domain.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestSessionService_Restore_FromStore(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)

	if _, err := svc.SignIn(context.Background()); err != nil {
		t.Fatal(err)
	}

	// A fresh service over the same store simulates a process restart.
	restarted := NewSessionService(store, 0, discardLogger)
	user, err := restarted.Restore(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "johndoe_ondo" {
		t.Errorf("expected restored username, got %q", user.Username)
	}
}

func TestSessionService_Restore_CorruptSnapshotIsAbsent(t *testing.T) {
	store := newMemStore()
	store.put(ports.KeyCurrentUser, "{not json")
	svc := NewSessionService(store, 0, discardLogger)

	_, err := svc.Restore(context.Background())
	if !errors.Is(err, domain.ErrNoActiveSession) {
		t.Errorf("corrupt session must read as absent, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateProfile tests
// ---------------------------------------------------------------------------

func strptr(s string) *string { return &s }

func TestSessionService_UpdateProfile_MergesMutableFields(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)
	if _, err := svc.SignIn(context.Background()); err != nil {
		t.Fatal(err)
	}

	user, err := svc.UpdateProfile(context.Background(), ports.ProfilePatch{
		Username: strptr("newhandle"),
		Phone:    strptr("9000000000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "newhandle" || user.Phone != "9000000000" {
		t.Errorf("patch not applied: %+v", user)
	}
	if user.Name != "John Doe" {
		t.Errorf("immutable field changed: %q", user.Name)
	}

	// The change must survive a restart.
	restarted := NewSessionService(store, 0, discardLogger)
	restored, err := restarted.Restore(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if restored.Username != "newhandle" {
		t.Errorf("update not persisted, got %q", restored.Username)
	}
}

func TestSessionService_UpdateProfile_WithoutSession(t *testing.T) {
	svc := NewSessionService(newMemStore(), 0, discardLogger)

	_, err := svc.UpdateProfile(context.Background(), ports.ProfilePatch{Username: strptr("ghost")})
	if !errors.Is(err, domain.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// SignOut tests
// ---------------------------------------------------------------------------

func TestSessionService_SignOut_ClearsSession(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)
	if _, err := svc.SignIn(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Restore(context.Background()); !errors.Is(err, domain.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession after sign-out, got %v", err)
	}
	if _, ok := store.data[ports.KeyCurrentUser]; ok {
		t.Error("current-user key must be removed on sign-out")
	}
}

func TestSessionService_SignOut_KeepsWelcomedFlag(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(store, 0, discardLogger)
	if _, err := svc.SignIn(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.data[ports.KeyWelcomed]; !ok {
		t.Error("welcomed-flag must survive sign-out")
	}
}
