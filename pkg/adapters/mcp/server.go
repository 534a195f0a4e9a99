package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/plangen/internal/logging"
	"github.com/aretw0/plangen/internal/presentation/tui"
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
)

// DomainsURI is the resource listing the registered domains.
const DomainsURI = "plangen://domains"

// Generator defines the interface required by the MCP server.
type Generator interface {
	Build(ctx context.Context, name string, size int) (*domain.Instance, error)
	GenerateMode(ctx context.Context, name string, size int, mode encoding.Mode) (*encoding.Encoding, error)
	Domains() []string
}

// Server wraps a Generator and exposes it as an MCP Server.
type Server struct {
	gen       Generator
	maxSize   int
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. Sizes above maxSize are
// rejected; zero disables the limit.
func NewServer(gen Generator, version string, maxSize int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		gen:       gen,
		maxSize:   maxSize,
		logger:    logger,
		mcpServer: server.NewMCPServer("plangen-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: generate
	s.mcpServer.AddTool(mcp.NewTool("generate",
		mcp.WithDescription("Generate the temporal-logic encoding of a planning domain."),
		mcp.WithString("domain", mcp.Required(), mcp.Description("Domain name: grid or tireworld")),
		mcp.WithNumber("size", mcp.Required(), mcp.Description("Grid side or number of triangle layers")),
		mcp.WithString("mode", mcp.Description("Encoding mode: ppltl (default) or ltlf")),
		mcp.WithString("format", mcp.Description("Output format: partition (default), args, sections, json or yaml")),
	), s.handleGenerate)

	// TOOL: describe
	s.mcpServer.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Summarise a domain instance as Markdown: partition, actions and conditions."),
		mcp.WithString("domain", mcp.Required(), mcp.Description("Domain name: grid or tireworld")),
		mcp.WithNumber("size", mcp.Required(), mcp.Description("Grid side or number of triangle layers")),
	), s.handleDescribe)
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	size, err := request.RequireInt("size")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := domain.CheckSizeLimit(size, s.maxSize); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := encoding.ParseMode(request.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := encoding.ParseFormat(request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	enc, err := s.gen.GenerateMode(ctx, name, size, mode)
	if err != nil {
		s.logger.Warn("MCP generate failed", "domain", name, "size", size, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("generate failed: %v", err)), nil
	}
	out, err := encoding.Render(enc, format)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	size, err := request.RequireInt("size")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := domain.CheckSizeLimit(size, s.maxSize); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in, err := s.gen.Build(ctx, name, size)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	enc, err := s.gen.GenerateMode(ctx, name, size, encoding.ModePPLTL)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return mcp.NewToolResultText(tui.Describe(in, enc)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: plangen://domains
	s.mcpServer.AddResource(mcp.NewResource(DomainsURI, "Registered Domains",
		mcp.WithMIMEType("application/json"),
	), s.readDomains)
}

func (s *Server) readDomains(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.gen.Domains())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DomainsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
