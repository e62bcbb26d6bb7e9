// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/illustrator-mcp/illustratorctl/pkg/mcp/iti"
	"github.com/illustrator-mcp/illustratorctl/pkg/prompt"
)

// textResult wraps a markdown document in a CallToolResult, keeping the
// structured counterpart alongside for clients that prefer it.
func textResult(markdown string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: markdown},
		},
		StructuredContent: structured,
	}
}

func (ts *ToolSet) GetPromptSuggestions(_ context.Context,
	_ *mcp.CallToolRequest, args iti.GetPromptSuggestionsParams,
) (*mcp.CallToolResult, *iti.GetPromptSuggestionsResult, error) {
	markdown, err := prompt.RenderSuggestions(args.Category)
	if err != nil {
		return nil, nil, err
	}
	res := &iti.GetPromptSuggestionsResult{}
	for _, c := range prompt.Categories() {
		if args.Category != "" && c.Key != args.Category {
			continue
		}
		res.Categories = append(res.Categories, iti.CategorySuggestions{
			Category: c.Key,
			Title:    c.Title,
			Prompts:  c.Prompts,
		})
	}
	return textResult(markdown, res), res, nil
}

func (ts *ToolSet) GetSystemPrompt(_ context.Context,
	_ *mcp.CallToolRequest, _ iti.GetSystemPromptParams,
) (*mcp.CallToolResult, *iti.GetSystemPromptResult, error) {
	res := &iti.GetSystemPromptResult{Text: prompt.SystemPrompt()}
	return textResult(res.Text, res), res, nil
}

func (ts *ToolSet) GetPromptingTips(_ context.Context,
	_ *mcp.CallToolRequest, _ iti.GetPromptingTipsParams,
) (*mcp.CallToolResult, *iti.GetPromptingTipsResult, error) {
	res := &iti.GetPromptingTipsResult{Tips: prompt.Tips()}
	return textResult(prompt.RenderTips(), res), res, nil
}

func (ts *ToolSet) GetAdvancedTemplate(_ context.Context,
	_ *mcp.CallToolRequest, args iti.GetAdvancedTemplateParams,
) (*mcp.CallToolResult, *iti.GetAdvancedTemplateResult, error) {
	if args.TemplateType == "" {
		return nil, nil, errors.New("template type is required")
	}
	if len(args.Parameters) == 0 {
		// No parameters at all: hand out the raw template to fill in.
		raw, err := prompt.Template(args.TemplateType)
		if err != nil {
			return nil, nil, err
		}
		res := &iti.GetAdvancedTemplateResult{Template: raw}
		markdown := fmt.Sprintf("**%s Template:**\n\n%s", prompt.TemplateTitle(args.TemplateType), raw)
		return textResult(markdown, res), res, nil
	}
	formatted, err := prompt.FormatTemplate(args.TemplateType, args.Parameters)
	if err == nil {
		res := &iti.GetAdvancedTemplateResult{Template: formatted}
		return textResult(formatted, res), res, nil
	}
	// An unfilled placeholder is not a failure: show the raw template and
	// tell the agent what is still missing, as the Python server did.
	var missingErr *prompt.MissingParamError
	if !errors.As(err, &missingErr) {
		return nil, nil, err
	}
	res := &iti.GetAdvancedTemplateResult{
		Template: missingErr.Template,
		Missing:  missingErr.Param,
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s Template:**\n\n%s\n\n", prompt.TemplateTitle(args.TemplateType), missingErr.Template)
	fmt.Fprintf(&sb, "**Missing parameter:** %q\n", missingErr.Param)
	sb.WriteString("Please provide the required parameters to fill in the template.")
	return textResult(sb.String(), res), res, nil
}

func (ts *ToolSet) Help(_ context.Context,
	_ *mcp.CallToolRequest, _ iti.HelpParams,
) (*mcp.CallToolResult, *iti.HelpResult, error) {
	res := &iti.HelpResult{Text: prompt.Help()}
	return textResult(res.Text, res), res, nil
}
