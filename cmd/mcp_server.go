package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/leo-benz/ComposeLayoutDumper/internal/config"
	"github.com/leo-benz/ComposeLayoutDumper/internal/dump"
	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// mcpServer wraps the MCP server with the capture cache.
type mcpServer struct {
	cache *captureCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with the
// layout-dumper tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	s := &mcpServer{cache: newCaptureCache(cfg.CacheTTL)}

	s.mcp = mcpserver.NewMCPServer(
		"layout-dumper",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// export
	s.mcp.AddTool(
		mcp.NewTool("export",
			mcp.WithDescription("Export a captured UI tree as an inspector JSON document. Collapses transparent scaffolding nodes and inlines every node's collected properties."),
			mcp.WithString("file", mcp.Description("Path to the capture file"), mcp.Required()),
			mcp.WithString("transparent", mcp.Description("Comma-separated extra transparent kinds")),
			mcp.WithString("process", mcp.Description("Override the recorded process name")),
			mcp.WithString("note", mcp.Description("Override the recorded note")),
		),
		s.handleExport,
	)

	// windows
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List the windows recorded in a capture file"),
			mcp.WithString("file", mcp.Description("Path to the capture file"), mcp.Required()),
			mcp.WithBoolean("visible", mcp.Description("Only include visible windows")),
		),
		s.handleWindows,
	)
}

func (s *mcpServer) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	file := StringParam(params, "file", "")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}

	cfg := config.Default()
	if extra := StringParam(params, "transparent", ""); extra != "" {
		for _, k := range strings.Split(extra, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.ExtraTransparentKinds = append(cfg.ExtraTransparentKinds, k)
			}
		}
	}
	cfg.ProcessName = StringParam(params, "process", "")
	cfg.Note = StringParam(params, "note", "")

	ts := time.Now().UnixMilli()
	src, err := s.cache.Load(file)
	if err != nil {
		// The document is the error report, same as the CLI path.
		return mcp.NewToolResultText(dump.FallbackDocument(ts, err)), nil
	}

	exporter := &dump.Exporter{
		Transparent:      model.NewKindSet(cfg.Kinds()...),
		Guard:            src.Guard(),
		MaxPropertyDepth: cfg.MaxPropertyDepth,
		Logger:           logger,
	}
	meta := dump.Metadata{Timestamp: ts, ProcessName: src.Process(), Note: src.Note()}
	if cfg.ProcessName != "" {
		meta.ProcessName = cfg.ProcessName
	}
	if cfg.Note != "" {
		meta.Note = cfg.Note
	}

	doc := exporter.Export(ctx, dump.Request{
		Root:     src.Root(),
		Provider: src,
		Meta:     meta,
		Windows:  src.Windows(),
		Device:   src.Device(),
	})
	return mcp.NewToolResultText(doc), nil
}

func (s *mcpServer) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	file := StringParam(params, "file", "")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}
	visibleOnly := BoolParam(params, "visible", false)

	src, err := s.cache.Load(file)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries := []windowEntry{}
	for _, w := range src.Windows() {
		if visibleOnly && !w.Visible {
			continue
		}
		entries = append(entries, windowEntry{ID: w.ID, DisplayName: w.DisplayName, Visible: w.Visible})
	}
	b, _ := yaml.Marshal(entries)
	return mcp.NewToolResultText(string(b)), nil
}
