package service

import "time"

// SessionInfo is the transport-facing summary of one live instance.
type SessionInfo struct {
	InstanceID string    `json:"instance_id"`
	PlayerName string    `json:"player_name"`
	CreatedAt  time.Time `json:"created_at"`
	GameOver   bool      `json:"game_over"`
	Victory    bool      `json:"victory"`
}

// CommandResult is what ProcessCommand returns to a transport: the
// narrated response text plus the machine-readable effects a client may
// want to render distinctly (a UI toast for an ItemAdded, say).
type CommandResult struct {
	InstanceID string   `json:"instance_id"`
	Text       string   `json:"text"`
	Effects    []Effect `json:"effects,omitempty"`
	GameOver   bool     `json:"game_over"`
	Victory    bool     `json:"victory"`
}

// Effect is the JSON-friendly projection of a command.Effect.
type Effect struct {
	Kind      string `json:"kind"`
	ItemID    string `json:"item_id,omitempty"`
	Stat      string `json:"stat,omitempty"`
	Delta     int    `json:"delta,omitempty"`
	Flag      string `json:"flag,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}
