// ABOUTME: MCP server implementation for datepage
// ABOUTME: Provides date arithmetic tools and stateful pager sessions to AI agents

package mcp

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/datestr"
	"github.com/harper/datepage/internal/logger"
	"github.com/harper/datepage/internal/paginate"
)

// Options configures a Server. Zero values fall back to the pager defaults.
type Options struct {
	Version    string
	Unit       string
	Multiplier int
	Direction  paginate.Direction
	WeekStart  time.Weekday
	Clock      func() time.Time
	Logger     *slog.Logger
}

// Server wraps the MCP server with pager sessions.
type Server struct {
	mcpServer *server.MCPServer
	opts      Options
	codec     datestr.Codec
	log       *slog.Logger

	mu       sync.Mutex
	sessions map[string]*paginate.Pager
}

// NewServer creates a new MCP server instance.
func NewServer(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Unit == "" {
		opts.Unit = paginate.DefaultUnit.String()
	}
	if opts.Multiplier == 0 {
		opts.Multiplier = paginate.DefaultMultiplier
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	s := &Server{
		opts:     opts,
		codec:    datestr.Codec{Location: time.UTC},
		log:      opts.Logger,
		sessions: make(map[string]*paginate.Pager),
	}

	s.mcpServer = server.NewMCPServer(
		"datepage",
		opts.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// now returns the clock's time in UTC; every date the server sees or
// reports is UTC so YYYY-MM-DD strings round trip unchanged.
func (s *Server) now() time.Time {
	return s.opts.Clock().UTC()
}

func (s *Server) calendarOptions() []calendar.Option {
	return []calendar.Option{calendar.WithWeekStart(s.opts.WeekStart)}
}

// registerTools is implemented in tools.go
// registerResources is implemented in resources.go
// registerPrompts is implemented in prompts.go
