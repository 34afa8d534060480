package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
	"github.com/couchcryptid/kma-mcp/internal/observability"
)

// Server identity reported to MCP clients.
const (
	ServerName    = "kma-mcp-server"
	ServerVersion = "0.1.0"
)

// Server exposes KMA client operations as MCP tools.
type Server struct {
	client  *kma.Client
	logger  *slog.Logger
	metrics *observability.Metrics
	mcp     *mcp.Server
	tools   []string
}

// NewServer creates an MCP server with every KMA tool registered.
func NewServer(client *kma.Client, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		client:  client,
		logger:  logger,
		metrics: metrics,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil),
	}
	s.registerObservationTools()
	s.registerHazardTools()
	s.registerForecastTools()
	s.registerCatalogTools()

	s.metrics.ToolsEnabled.Set(float64(len(s.tools)))
	return s
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string { return append([]string(nil), s.tools...) }

// RunStdio serves MCP over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("mcp server running on stdio", "tools", len(s.tools))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler serves MCP over the streamable HTTP transport.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil)
}

// addTool registers a tool whose handler returns result text. Input is
// validated first; any error becomes an IsError result so the session survives.
func addTool[In any](s *Server, name, description string, run func(context.Context, In) (string, error)) {
	s.tools = append(s.tools, name)
	mcp.AddTool(s.mcp, &mcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
			start := time.Now()
			var text string
			err := validateInput(in)
			if err == nil {
				text, err = run(ctx, in)
			}
			s.observe(name, start, err)
			if err != nil {
				return errorResult(err), nil, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: text}},
			}, nil, nil
		})
}

func (s *Server) observe(tool string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		s.logger.Warn("tool call failed", "tool", tool, "error", err)
	}
	s.metrics.ToolCalls.WithLabelValues(tool, outcome).Inc()
	s.metrics.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// toJSON renders records as indented JSON.
func toJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}

// withSummaries renders records as JSON followed by one summary line per record.
func withSummaries[T any](records []T, summary func(T) string) (string, error) {
	text, err := toJSON(records)
	if err != nil || len(records) == 0 {
		return text, err
	}
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(summary(rec))
	}
	return b.String(), nil
}
