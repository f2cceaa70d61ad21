// Package api is the REST surface over game/service.GameService: an
// external collaborator (§1, §6.3) that owns HTTP routing, auth, and
// session lifecycle concerns the engine itself is ignorant of. It
// receives pre-authenticated (instance_id, command_text) requests and
// forwards them unchanged to the façade.
package api
