package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewContractGateMCPServer creates a new MCP server with the ContractGate
// tools registered. The projectPath is the root directory of the contract
// repository to evaluate.
func NewContractGateMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"contractgate",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
