package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/contractgate/contractgate/internal/adapters/outbound/config"
	"github.com/contractgate/contractgate/internal/adapters/outbound/revision"
	"github.com/contractgate/contractgate/internal/adapters/outbound/schemadoc"
	"github.com/contractgate/contractgate/internal/application"
)

// registerTools registers all ContractGate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. contractgate_check
	s.AddTool(
		mcplib.NewTool("contractgate_check",
			mcplib.WithDescription("Run the contract gate: classify changed schema files and verify the declared version bump. Returns the full report as JSON."),
			mcplib.WithString("base", mcplib.Description("Base revision to diff against (defaults to config, then HEAD)")),
			mcplib.WithString("files", mcplib.Description("Comma-separated schema paths to evaluate instead of the git diff")),
		),
		handleCheck(projectPath),
	)

	// 2. contractgate_classify
	s.AddTool(
		mcplib.NewTool("contractgate_classify",
			mcplib.WithDescription("Classify a single schema file's change severity against the base revision"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Schema path relative to the project root"),
			),
			mcplib.WithString("base", mcplib.Description("Base revision to diff against (defaults to config, then HEAD)")),
		),
		handleClassify(projectPath),
	)
}

// newService creates the gate service on the standard outbound adapters.
func newService() *application.GateService {
	return application.NewGateService(revision.New(), config.New(), schemadoc.New())
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		base, _ := request.GetArguments()["base"].(string)
		rawFiles, _ := request.GetArguments()["files"].(string)

		report, err := newService().Run(projectPath, base, splitList(rawFiles))
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleClassify(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		base, _ := request.GetArguments()["base"].(string)

		record, err := newService().ClassifyFile(projectPath, base, file)
		if err != nil {
			return errorResult(fmt.Sprintf("classify failed: %v", err)), nil
		}
		return jsonResult(record)
	}
}

// splitList splits a comma-separated parameter, dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
