package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	mock_cache "github.com/quarterdeckhq/quarterdeck/internal/cache/mocks"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
	"go.uber.org/mock/gomock"
)

func TestPrefCache_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mock_cache.NewMockPrefQuerier(ctrl)
	mockQuerier.EXPECT().ListSessionPrefs(gomock.Any()).Return([]*entity.SessionPref{
		{ClientID: "ops-console-1", LastView: "dispatches", UpdatedAt: time.Now()},
		{ClientID: "ops-console-2", LastView: "workers", UpdatedAt: time.Now()},
	}, nil)

	prefs := NewPrefCache(context.Background(), mockQuerier)
	if err := prefs.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	view, ok := prefs.LastView("ops-console-1")
	if !ok || view != "dispatches" {
		t.Errorf("LastView(ops-console-1) = %q, %v; want dispatches, true", view, ok)
	}
	view, ok = prefs.LastView("ops-console-2")
	if !ok || view != "workers" {
		t.Errorf("LastView(ops-console-2) = %q, %v; want workers, true", view, ok)
	}
	if _, ok := prefs.LastView("unknown-client"); ok {
		t.Error("LastView(unknown-client) should report a miss")
	}
}

func TestPrefCache_SetLastViewPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var persisted []*entity.SessionPref

	mockQuerier := mock_cache.NewMockPrefQuerier(ctrl)
	mockQuerier.EXPECT().
		UpsertSessionPref(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pref *entity.SessionPref) error {
			mu.Lock()
			persisted = append(persisted, pref)
			mu.Unlock()
			return nil
		})

	prefs := NewPrefCache(context.Background(), mockQuerier)

	if err := prefs.SetLastView("ops-console-1", "tasks"); err != nil {
		t.Fatalf("SetLastView() failed: %v", err)
	}

	// Immediate read-back from RAM.
	if view, ok := prefs.LastView("ops-console-1"); !ok || view != "tasks" {
		t.Errorf("LastView(ops-console-1) = %q, %v; want tasks, true", view, ok)
	}

	if err := prefs.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(persisted) != 1 {
		t.Fatalf("Expected 1 upsert, got %d", len(persisted))
	}
	if persisted[0].ClientID != "ops-console-1" || persisted[0].LastView != "tasks" {
		t.Errorf("Upserted %+v, want ops-console-1/tasks", persisted[0])
	}
}

func TestPrefCache_SetLastViewKeepsRecordIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mock_cache.NewMockPrefQuerier(ctrl)
	mockQuerier.EXPECT().ListSessionPrefs(gomock.Any()).Return([]*entity.SessionPref{
		{ClientID: "ops-console-1", LastView: "dispatches", UpdatedAt: time.Now().Add(-time.Hour)},
	}, nil)
	mockQuerier.EXPECT().UpsertSessionPref(gomock.Any(), gomock.Any()).Return(nil)

	prefs := NewPrefCache(context.Background(), mockQuerier)
	if err := prefs.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	before, _ := prefs.Get("ops-console-1")

	if err := prefs.SetLastView("ops-console-1", "workers"); err != nil {
		t.Fatalf("SetLastView() failed: %v", err)
	}
	if err := prefs.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	after, _ := prefs.Get("ops-console-1")
	if after.LastView != "workers" {
		t.Errorf("LastView = %q, want workers", after.LastView)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt was not advanced: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
	// The loaded record must not be mutated in place; concurrent readers may
	// still hold it.
	if before.LastView != "dispatches" {
		t.Errorf("Loaded record mutated in place: %+v", before)
	}
}

func TestPrefCache_ForgetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mock_cache.NewMockPrefQuerier(ctrl)
	mockQuerier.EXPECT().UpsertSessionPref(gomock.Any(), gomock.Any()).Return(nil)
	mockQuerier.EXPECT().DeleteSessionPref(gomock.Any(), "ops-console-1").Return(nil)

	prefs := NewPrefCache(context.Background(), mockQuerier)

	if err := prefs.SetLastView("ops-console-1", "tasks"); err != nil {
		t.Fatalf("SetLastView() failed: %v", err)
	}
	if err := prefs.ForgetClient("ops-console-1"); err != nil {
		t.Fatalf("ForgetClient() failed: %v", err)
	}
	if err := prefs.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if _, ok := prefs.LastView("ops-console-1"); ok {
		t.Error("LastView should report a miss after ForgetClient")
	}
}
