package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plivo-mcp/internal/gateway"
)

const (
	ServerName    = "PlivoMCP"
	ServerVersion = "1.0.0"
)

// New builds an MCP server exposing every gateway tool.
//
// Outcome mapping:
//   - success and provider rejection: a text result holding the JSON object
//   - invalid arguments: an error result, so the calling model can correct itself
//   - any other error: returned from the handler and surfaced as a protocol error
func New(g *gateway.Gateway, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.Default()
	}
	s := server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(false))
	for _, spec := range gateway.Catalog() {
		s.AddTool(toolFor(spec), handlerFor(g, spec.Name, logger))
	}
	return s
}

func toolFor(spec gateway.ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}
	for _, p := range spec.Params {
		popts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			popts = append(popts, mcp.Required())
		}
		if p.Default != "" {
			popts = append(popts, mcp.DefaultString(p.Default))
		}
		opts = append(opts, mcp.WithString(p.Name, popts...))
	}
	return mcp.NewTool(spec.Name, opts...)
}

func handlerFor(g *gateway.Gateway, name string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := g.Invoke(ctx, name, req.GetArguments())
		if errors.Is(err, gateway.ErrInvalidArguments) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(res)
		if err != nil {
			logger.Error("encode tool result", "tool", name, "err", err)
			return nil, fmt.Errorf("mcpserver: encode %s result: %w", name, err)
		}
		return mcp.NewToolResultText(string(b)), nil
	}
}

// ServeStdio serves s over newline-delimited JSON-RPC until in closes or ctx is done.
// Nothing but protocol frames may be written to out.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(slogWriter{logger}, "", 0))

	logger.Info("mcp server listening on stdio", "name", ServerName, "version", ServerVersion)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// slogWriter forwards the stdio server's error log lines to slog.
type slogWriter struct{ l *slog.Logger }

func (w slogWriter) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	w.l.Error("mcp stdio", "msg", msg)
	return len(p), nil
}
