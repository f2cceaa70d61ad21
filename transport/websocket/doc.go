// Package websocket broadcasts narrated command results to every client
// watching a given game instance. It is an external collaborator the
// engine is ignorant of (§6.3): it owns connection lifecycle and fan-out,
// and never reaches into game/* state directly — it only relays the
// service.CommandResult values the façade already produced.
package websocket
