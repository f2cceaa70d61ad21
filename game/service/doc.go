// Package service is the application-facing façade a transport calls:
// it wraps game/session's Manager behind a narrower, context-aware
// interface so HTTP, websocket, and MCP callers share one code path for
// session lifecycle and command dispatch.
package service
