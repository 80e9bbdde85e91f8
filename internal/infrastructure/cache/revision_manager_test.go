package cache

import (
	"context"
	"testing"
	"time"
)

func TestRevisionManager_SetRevision(t *testing.T) {
	// Create a RevisionManager without DB connection (testing mode)
	mgr := &RevisionManager{
		db:         nil,
		refreshTTL: 5 * time.Minute,
		stopCh:     make(chan struct{}),
	}

	mgr.SetRevision("42")

	revision, err := mgr.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != "42" {
		t.Errorf("expected revision '42', got '%s'", revision)
	}
}

func TestRevisionManager_Current_Empty(t *testing.T) {
	mgr := &RevisionManager{
		db:         nil,
		refreshTTL: 5 * time.Minute,
		stopCh:     make(chan struct{}),
	}

	// No revision set and no DB: empty revision, no error
	revision, err := mgr.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != "" {
		t.Errorf("expected empty revision, got '%s'", revision)
	}
}

func TestRevisionManager_Stop_Idempotent(t *testing.T) {
	mgr := NewRevisionManager(nil, "", 5*time.Minute)

	if err := mgr.Stop(); err != nil {
		t.Fatalf("first Stop() error = %v", err)
	}
	if err := mgr.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}
