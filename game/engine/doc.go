// Package engine wires every game/* subsystem into a single per-instance
// GameEngine: it owns the world, the player, the dynamic world state, and
// the command handlers that read and mutate them. ProcessCommand is the
// engine's one entry point — parse, dispatch, mutate, narrate — matching
// the data flow described for one command. Handlers never perform I/O;
// persistence happens outside, in game/session, after a handler returns.
package engine
