// Package mcp exposes the planform engine to MCP clients over stdio or SSE.
package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/planform/planform"
	"github.com/planform/planform/internal/encoder/dxf"
	"github.com/planform/planform/pkg/analysis"
	"github.com/planform/planform/pkg/convert"
	"github.com/planform/planform/pkg/domain"
)

// ValidationResponse is the structured result of the validate_spec tool.
type ValidationResponse struct {
	Valid       bool               `json:"valid" jsonschema_description:"True when no error-severity diagnostic was produced"`
	Diagnostics domain.Diagnostics `json:"diagnostics" jsonschema_description:"Every finding from the three validation stages"`
}

// PlanResponse is the structured result of the create_floor_plan tool.
type PlanResponse struct {
	ID       string `json:"id" jsonschema_description:"Deterministic drawing identifier"`
	Name     string `json:"name" jsonschema_description:"Drawing name derived from the project"`
	Level    int    `json:"level" jsonschema_description:"Floor level that was rendered"`
	Entities int    `json:"entities" jsonschema_description:"Total entity count across all layers"`
	DXF      string `json:"dxf" jsonschema_description:"Base64-encoded ASCII DXF document"`
}

// AnalysisResponse is the structured result of the analyze_floor_plan tool.
type AnalysisResponse struct {
	Report      *analysis.FloorReport `json:"report" jsonschema_description:"Per-room and floor-level measurements"`
	Diagnostics domain.Diagnostics    `json:"diagnostics" jsonschema_description:"Findings produced while validating the document"`
}

// ConvertResponse is the structured result of the convert_format tool.
type ConvertResponse struct {
	Format  string `json:"format" jsonschema_description:"Target format the document was encoded in"`
	Content string `json:"content" jsonschema_description:"The converted document"`
}

// Server wraps the planform Engine and exposes it as an MCP Server.
type Server struct {
	engine    *planform.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *planform.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("planform-mcp", strings.TrimSpace(planform.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_spec
	validateTool := mcp.NewTool("validate_spec",
		mcp.WithDescription("Validate an architectural design document (JSON or YAML) through the structural, model and geometry stages."),
		mcp.WithString("spec", mcp.Required(), mcp.Description("The design document content")),
		mcp.WithOutputSchema[ValidationResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: create_floor_plan
	planTool := mcp.NewTool("create_floor_plan",
		mcp.WithDescription("Validate a design document and render one floor as a DXF drawing."),
		mcp.WithString("spec", mcp.Required(), mcp.Description("The design document content")),
		mcp.WithNumber("level", mcp.Description("Floor level to render (default 0)")),
		mcp.WithOutputSchema[PlanResponse](),
	)
	s.mcpServer.AddTool(planTool, mcp.NewStructuredToolHandler(s.handleCreatePlan))

	// TOOL: analyze_floor_plan
	analyzeTool := mcp.NewTool("analyze_floor_plan",
		mcp.WithDescription("Validate a design document and report room areas, perimeters and opening counts for one floor."),
		mcp.WithString("spec", mcp.Required(), mcp.Description("The design document content")),
		mcp.WithNumber("level", mcp.Description("Floor level to analyze (default 0)")),
		mcp.WithOutputSchema[AnalysisResponse](),
	)
	s.mcpServer.AddTool(analyzeTool, mcp.NewStructuredToolHandler(s.handleAnalyze))

	// TOOL: convert_format
	convertTool := mcp.NewTool("convert_format",
		mcp.WithDescription("Convert a design document between JSON and YAML."),
		mcp.WithString("spec", mcp.Required(), mcp.Description("The design document content")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Target format: json or yaml")),
		mcp.WithOutputSchema[ConvertResponse](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))
}

// Handler methods for structured tools

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidationResponse, error) {
	raw, _ := args["spec"].(string)
	diags, err := s.engine.Validate([]byte(raw))
	if err != nil {
		return ValidationResponse{}, fmt.Errorf("validation failed: %w", err)
	}
	if diags == nil {
		diags = domain.Diagnostics{}
	}
	return ValidationResponse{
		Valid:       !diags.HasErrors(),
		Diagnostics: diags,
	}, nil
}

func (s *Server) handleCreatePlan(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlanResponse, error) {
	raw, _ := args["spec"].(string)
	level := intArg(args, "level")

	doc, diags, err := s.engine.Generate([]byte(raw), level)
	if err != nil {
		if diags.HasErrors() {
			return PlanResponse{}, fmt.Errorf("document invalid: %s", firstError(diags))
		}
		return PlanResponse{}, fmt.Errorf("generation failed: %w", err)
	}

	var buf strings.Builder
	if err := dxf.Encode(doc, &buf); err != nil {
		return PlanResponse{}, fmt.Errorf("encoding dxf: %w", err)
	}

	return PlanResponse{
		ID:       doc.ID,
		Name:     doc.Name,
		Level:    doc.Level,
		Entities: doc.EntityCount(),
		DXF:      base64.StdEncoding.EncodeToString([]byte(buf.String())),
	}, nil
}

func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AnalysisResponse, error) {
	raw, _ := args["spec"].(string)
	level := intArg(args, "level")

	report, diags, err := s.engine.Analyze([]byte(raw), level)
	if err != nil {
		if diags.HasErrors() {
			return AnalysisResponse{}, fmt.Errorf("document invalid: %s", firstError(diags))
		}
		return AnalysisResponse{}, fmt.Errorf("analysis failed: %w", err)
	}
	if diags == nil {
		diags = domain.Diagnostics{}
	}
	return AnalysisResponse{Report: report, Diagnostics: diags}, nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResponse, error) {
	raw, _ := args["spec"].(string)
	target, _ := args["to"].(string)

	format, err := convert.ParseFormat(target)
	if err != nil {
		return ConvertResponse{}, err
	}
	out, err := convert.Convert([]byte(raw), format)
	if err != nil {
		return ConvertResponse{}, fmt.Errorf("conversion failed: %w", err)
	}
	return ConvertResponse{Format: string(format), Content: string(out)}, nil
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}

func firstError(diags domain.Diagnostics) string {
	for _, d := range diags {
		if d.Severity == domain.SeverityError {
			return d.String()
		}
	}
	if len(diags) > 0 {
		return diags[0].String()
	}
	return "unknown validation failure"
}
