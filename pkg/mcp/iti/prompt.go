// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package iti

import "github.com/modelcontextprotocol/go-sdk/mcp"

var GetPromptSuggestions = &mcp.Tool{
	Name:        "get_prompt_suggestions",
	Description: `Get categorized prompt suggestions for creating content in Illustrator.`,
}

type GetPromptSuggestionsParams struct {
	Category string `json:"category,omitempty" jsonschema:"Optional category filter. One of: basic_shapes, typography, logos, illustrations, icons, artistic, charts, print."`
}

type CategorySuggestions struct {
	Category string   `json:"category" jsonschema:"The category filter key."`
	Title    string   `json:"title" jsonschema:"The category heading."`
	Prompts  []string `json:"prompts" jsonschema:"Ready-to-use example prompts."`
}

type GetPromptSuggestionsResult struct {
	Categories []CategorySuggestions `json:"categories" jsonschema:"The matching categories, in presentation order."`
}

var GetSystemPrompt = &mcp.Tool{
	Name:        "get_system_prompt",
	Description: `Get the system prompt template for better AI guidance when working with Illustrator.`,
}

type GetSystemPromptParams struct{}

type GetSystemPromptResult struct {
	Text string `json:"text" jsonschema:"The system prompt text."`
}

var GetPromptingTips = &mcp.Tool{
	Name:        "get_prompting_tips",
	Description: `Get tips for creating better prompts when working with Illustrator.`,
}

type GetPromptingTipsParams struct{}

type GetPromptingTipsResult struct {
	Tips []string `json:"tips" jsonschema:"The tips, one markdown line each."`
}

var GetAdvancedTemplate = &mcp.Tool{
	Name:        "get_advanced_template",
	Description: `Get an advanced prompt template for complex design tasks.`,
}

type GetAdvancedTemplateParams struct {
	TemplateType string            `json:"template_type" jsonschema:"The template to get. One of: logo_design, illustration, infographic, icon_set."`
	Parameters   map[string]string `json:"parameters,omitempty" jsonschema:"Parameters to fill into the template; the placeholders vary by template type."`
}

type GetAdvancedTemplateResult struct {
	Template string `json:"template" jsonschema:"The template text, with placeholders filled in as far as the given parameters allow."`
	Missing  string `json:"missing,omitempty" jsonschema:"The first placeholder that is still unfilled, if any."`
}

var Help = &mcp.Tool{
	Name:        "help",
	Description: `Display comprehensive help information for using the Illustrator MCP server.`,
}

type HelpParams struct{}

type HelpResult struct {
	Text string `json:"text" jsonschema:"The help document, as markdown."`
}
