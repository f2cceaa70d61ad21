package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lastcentaur/engine/game/service"
)

// Server wraps an mcp-go MCPServer exposing the game's command surface as
// tools, calling straight into the service façade in-process rather than
// proxying over HTTP.
type Server struct {
	svc       service.GameService
	mcpServer *server.MCPServer
}

// NewServer builds an MCP server with every tool registered.
func NewServer(svc service.GameService) *Server {
	s := &Server{svc: svc}
	s.mcpServer = server.NewMCPServer(
		"The Last Centaur",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`The Last Centaur - MCP Interface

AVAILABLE TOOLS:
- create_instance: start a new game instance
- get_instance: fetch an instance's summary status
- delete_instance: tear down an instance
- command: send one line of game text ("north", "attack phantom_assassin", "path select warrior", ...) and get back the narrated response and effects
- save_instance: force a persistence write now

Every verb the game understands (movement, combat, inventory, path selection, discovery interaction, status, help) goes through the single 'command' tool as free text — the engine parses intent itself.`),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server for the caller to drive
// via stdio or HTTP transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_instance",
		Description: "Start a new game instance",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"instance_id": map[string]any{"type": "string", "description": "Optional instance id; generated if omitted"},
				"player_name": map[string]any{"type": "string", "description": "Display name for the new player"},
			},
			Required: []string{"player_name"},
		},
	}, s.handleCreateInstance)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_instance",
		Description: "Get an instance's summary status",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"instance_id": map[string]any{"type": "string"}},
			Required:   []string{"instance_id"},
		},
	}, s.handleGetInstance)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_instance",
		Description: "Tear down a game instance",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"instance_id": map[string]any{"type": "string"}},
			Required:   []string{"instance_id"},
		},
	}, s.handleDeleteInstance)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "command",
		Description: "Send one line of game text to an instance and get the narrated response",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"instance_id": map[string]any{"type": "string"},
				"command":     map[string]any{"type": "string", "description": "e.g. \"north\", \"attack phantom_assassin\", \"path select warrior\""},
			},
			Required: []string{"instance_id", "command"},
		},
	}, s.handleCommand)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "save_instance",
		Description: "Force a persistence write for an instance now",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"instance_id": map[string]any{"type": "string"}},
			Required:   []string{"instance_id"},
		},
	}, s.handleSaveInstance)
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func (s *Server) handleCreateInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	info, err := s.svc.CreateSession(ctx, stringArg(args, "instance_id"), stringArg(args, "player_name"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(info.InstanceID + ": instance created for " + info.PlayerName), nil
}

func (s *Server) handleGetInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	info, err := s.svc.GetSession(ctx, stringArg(args, "instance_id"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status := "in progress"
	if info.GameOver {
		status = "over"
		if info.Victory {
			status = "won"
		}
	}
	return mcp.NewToolResultText(info.PlayerName + "'s journey is " + status), nil
}

func (s *Server) handleDeleteInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	if err := s.svc.DeleteSession(ctx, stringArg(args, "instance_id")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("instance deleted"), nil
}

func (s *Server) handleCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	result, err := s.svc.ProcessCommand(ctx, stringArg(args, "instance_id"), stringArg(args, "command"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}

func (s *Server) handleSaveInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	if err := s.svc.SaveSession(ctx, stringArg(args, "instance_id")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("saved"), nil
}
