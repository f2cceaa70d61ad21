// Package session is the persistence adapter described in the design's
// §4.10/§6.2/§6.3: it serializes the mutable slice of an engine.GameEngine
// to the opaque snapshot shape the spec defines, restores it, and manages
// the lifecycle of in-memory instances on top of a pluggable
// Store — the engine's only external, I/O-capable
// collaborator.
package session
