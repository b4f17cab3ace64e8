package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    *types.Config
	logger    *slog.Logger
	stdin     io.Reader
	stdout    io.Writer
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(config *types.Config, sessions *session.Manager, logger *slog.Logger) *CalcServer {
	if logger == nil {
		logger = slog.Default()
	}

	s := &CalcServer{
		sessions: sessions,
		config:   config,
		logger:   logger,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}

	hooks := &server.Hooks{}
	hooks.AddOnRegisterSession(s.onRegisterSession)
	hooks.AddOnUnregisterSession(s.onUnregisterSession)

	s.mcpServer = server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithHooks(hooks),
	)
	s.registerTools()

	return s
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Start serves MCP over stdio until ctx is cancelled or stdin is closed
func (s *CalcServer) Start(ctx context.Context) error {
	s.logger.Info("Starting calculator MCP server",
		"version", project.Version,
		"log_level", s.config.LogLevel,
		"locale", s.config.Locale,
	)

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.All(s.sessions) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

func (s *CalcServer) onRegisterSession(ctx context.Context, clientSession server.ClientSession) {
	s.logger.Debug("MCP client session registered", "session_id", clientSession.SessionID())
}

func (s *CalcServer) onUnregisterSession(ctx context.Context, clientSession server.ClientSession) {
	if s.sessions.Drop(clientSession.SessionID()) {
		s.logger.Debug("Released calculator for MCP client session", "session_id", clientSession.SessionID())
	}
}

// Shutdown releases every calculator session
func (s *CalcServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down calculator MCP server", "sessions", s.sessions.Len())

	for _, id := range s.sessions.IDs() {
		s.sessions.Drop(id)
	}

	return nil
}
