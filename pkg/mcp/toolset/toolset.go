// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolset implements the handlers behind the Illustrator Tool
// Interface (pkg/mcp/iti).
package toolset

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/illustrator-mcp/illustratorctl/pkg/illustrator"
	"github.com/illustrator-mcp/illustratorctl/pkg/mcp/iti"
)

func New(scripter illustrator.Scripter) *ToolSet {
	return &ToolSet{scripter: scripter}
}

type ToolSet struct {
	scripter illustrator.Scripter
}

func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, iti.Run, ts.Run)
	mcp.AddTool(server, iti.View, ts.View)
	mcp.AddTool(server, iti.GetPromptSuggestions, ts.GetPromptSuggestions)
	mcp.AddTool(server, iti.GetSystemPrompt, ts.GetSystemPrompt)
	mcp.AddTool(server, iti.GetPromptingTips, ts.GetPromptingTips)
	mcp.AddTool(server, iti.GetAdvancedTemplate, ts.GetAdvancedTemplate)
	mcp.AddTool(server, iti.Help, ts.Help)
	return nil
}
