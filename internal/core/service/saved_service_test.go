package service

import (
	"context"
	"testing"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

func TestSavedService_Toggle_AddsThenRemoves(t *testing.T) {
	svc := NewSavedService(newMemStore(), discardLogger)
	ctx := context.Background()

	saved, err := svc.Toggle(ctx, "listing-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Error("first toggle must save")
	}

	saved, err = svc.Toggle(ctx, "listing-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved {
		t.Error("second toggle must unsave")
	}

	ids, _ := svc.All(ctx)
	if len(ids) != 0 {
		t.Errorf("double toggle must restore the empty set, got %v", ids)
	}
}

func TestSavedService_Toggle_PreservesInsertionOrder(t *testing.T) {
	svc := NewSavedService(newMemStore(), discardLogger)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := svc.Toggle(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Toggle(ctx, "b"); err != nil {
		t.Fatal(err)
	}

	ids, _ := svc.All(ctx)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Errorf("expected [a c], got %v", ids)
	}
}

func TestSavedService_Contains(t *testing.T) {
	svc := NewSavedService(newMemStore(), discardLogger)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "listing-1"); err != nil {
		t.Fatal(err)
	}

	got, _ := svc.Contains(ctx, "listing-1")
	if !got {
		t.Error("expected listing-1 to be saved")
	}
	got, _ = svc.Contains(ctx, "listing-2")
	if got {
		t.Error("listing-2 must not be saved")
	}
}

func TestSavedService_SurvivesRestart(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	first := NewSavedService(store, discardLogger)
	if _, err := first.Toggle(ctx, "listing-1"); err != nil {
		t.Fatal(err)
	}

	second := NewSavedService(store, discardLogger)
	got, _ := second.Contains(ctx, "listing-1")
	if !got {
		t.Error("saved set must survive a restart over the same store")
	}
}

func TestSavedService_CorruptSnapshotReadsEmpty(t *testing.T) {
	store := newMemStore()
	store.put(ports.KeySavedIDs, "[broken")
	svc := NewSavedService(store, discardLogger)

	ids, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("corrupt snapshot must read as empty, got %v", ids)
	}
}
