package service_test

import (
	"context"
	"testing"

	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/service"
	"github.com/lastcentaur/engine/game/session"
)

func newService(t *testing.T) service.GameService {
	t.Helper()
	manager := session.NewManager(leaderboard.NewBoard())
	return service.NewGameService(manager)
}

func TestCreateAndGetSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "", "Rin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if info.InstanceID == "" {
		t.Fatal("expected a generated instance id")
	}
	if info.PlayerName != "Rin" {
		t.Errorf("expected player name Rin, got %s", info.PlayerName)
	}

	got, err := svc.GetSession(ctx, info.InstanceID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.InstanceID != info.InstanceID {
		t.Errorf("expected instance id %s, got %s", info.InstanceID, got.InstanceID)
	}
}

func TestGetSessionMissing(t *testing.T) {
	svc := newService(t)
	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Error("expected an error for a missing instance")
	}
}

func TestProcessCommandReturnsNarration(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "", "Rin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	result, err := svc.ProcessCommand(ctx, info.InstanceID, "look")
	if err != nil {
		t.Fatalf("process command: %v", err)
	}
	if result.Text == "" {
		t.Error("expected non-empty narration text")
	}
	if result.InstanceID != info.InstanceID {
		t.Errorf("expected instance id %s, got %s", info.InstanceID, result.InstanceID)
	}
}

func TestProcessCommandUnknownInstance(t *testing.T) {
	svc := newService(t)
	if _, err := svc.ProcessCommand(context.Background(), "missing", "look"); err == nil {
		t.Error("expected an error processing a command for a missing instance")
	}
}

func TestDeleteSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "", "Rin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := svc.DeleteSession(ctx, info.InstanceID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.InstanceID); err == nil {
		t.Error("expected an error getting a deleted instance")
	}
}

func TestProcessCommandRejectsCancelledContext(t *testing.T) {
	svc := newService(t)
	info, err := svc.CreateSession(context.Background(), "", "Rin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.ProcessCommand(ctx, info.InstanceID, "look"); err == nil {
		t.Error("expected a cancelled context to be rejected before dispatch")
	}
}

func TestSaveSessionWithoutStoreIsNoop(t *testing.T) {
	svc := newService(t)
	info, err := svc.CreateSession(context.Background(), "", "Rin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := svc.SaveSession(context.Background(), info.InstanceID); err != nil {
		t.Errorf("expected a no-op save with no backing store, got %v", err)
	}
}
