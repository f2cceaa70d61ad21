package service

import "context"

// GameService is the operation set a transport drives: session lifecycle
// plus the single command-processing entry point. Every method accepts a
// context so a transport can cancel a request while persistence is in
// flight; per the design, cancellation during persistence never corrupts
// in-memory state, so a caller may always retry.
type GameService interface {
	CreateSession(ctx context.Context, instanceID, playerName string) (*SessionInfo, error)
	GetSession(ctx context.Context, instanceID string) (*SessionInfo, error)
	DeleteSession(ctx context.Context, instanceID string) error

	ProcessCommand(ctx context.Context, instanceID, commandText string) (*CommandResult, error)

	SaveSession(ctx context.Context, instanceID string) error
}
