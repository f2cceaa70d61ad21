package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/session"
)

// gameServiceImpl implements GameService on top of a session.Manager.
type gameServiceImpl struct {
	sessions *session.Manager
	started  map[string]time.Time
}

// NewGameService wraps a session manager as a GameService.
func NewGameService(sessions *session.Manager) GameService {
	return &gameServiceImpl{sessions: sessions, started: map[string]time.Time{}}
}

func (s *gameServiceImpl) CreateSession(ctx context.Context, instanceID, playerName string) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.sessions.Create(instanceID, playerName)
	if err != nil {
		return nil, fmt.Errorf("creating session %s: %w", instanceID, err)
	}
	s.started[e.InstanceID] = time.Now()
	return &SessionInfo{
		InstanceID: e.InstanceID,
		PlayerName: e.Player.Name,
		CreatedAt:  s.started[e.InstanceID],
	}, nil
}

func (s *gameServiceImpl) GetSession(ctx context.Context, instanceID string) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.sessions.Get(instanceID)
	if err != nil {
		return nil, fmt.Errorf("getting session %s: %w", instanceID, err)
	}
	return &SessionInfo{
		InstanceID: e.InstanceID,
		PlayerName: e.Player.Name,
		CreatedAt:  s.started[e.InstanceID],
		GameOver:   e.GameOver,
		Victory:    e.Victory,
	}, nil
}

func (s *gameServiceImpl) DeleteSession(ctx context.Context, instanceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delete(s.started, instanceID)
	if err := s.sessions.Delete(instanceID); err != nil {
		return fmt.Errorf("deleting session %s: %w", instanceID, err)
	}
	return nil
}

// ProcessCommand dispatches commandText to instanceID's engine and, if the
// handler signaled save_requested or quit_requested, persists the
// instance before returning — the only suspension points the design's
// concurrency model allows inside a command's lifecycle.
func (s *gameServiceImpl) ProcessCommand(ctx context.Context, instanceID, commandText string) (*CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.sessions.Get(instanceID)
	if err != nil {
		return nil, fmt.Errorf("processing command for %s: %w", instanceID, err)
	}

	result := e.ProcessCommand(commandText)

	wantsSave := false
	for _, eff := range result.Effects {
		if eff.Kind == command.FlagSet && (eff.Flag == "save_requested" || eff.Flag == "quit_requested") {
			wantsSave = true
		}
	}
	if wantsSave {
		if err := ctx.Err(); err == nil {
			_ = s.sessions.Save(instanceID)
		}
	}

	return &CommandResult{
		InstanceID: instanceID,
		Text:       result.Text,
		Effects:    projectEffects(result.Effects),
		GameOver:   e.GameOver,
		Victory:    e.Victory,
	}, nil
}

func (s *gameServiceImpl) SaveSession(ctx context.Context, instanceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.sessions.Save(instanceID); err != nil {
		return fmt.Errorf("saving session %s: %w", instanceID, err)
	}
	return nil
}

func projectEffects(record command.EffectsRecord) []Effect {
	out := make([]Effect, 0, len(record))
	for _, e := range record {
		out = append(out, Effect{
			Kind:      string(e.Kind),
			ItemID:    e.ItemID,
			Stat:      e.Stat,
			Delta:     e.Delta,
			Flag:      e.Flag,
			ErrorCode: e.ErrorCode,
		})
	}
	return out
}
