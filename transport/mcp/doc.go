// Package mcp exposes the command surface (§6.1) as MCP tools: instance
// lifecycle tools plus a single free-text command tool that carries every
// game verb, each forwarding straight to game/service.GameService.
// Like the REST and websocket transports, it is an external collaborator
// (§1) the engine never imports back.
package mcp
