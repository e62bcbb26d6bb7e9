// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"strings"
)

// Help renders the full help document of the tool surface.
func Help() string {
	var sb strings.Builder
	sb.WriteString(`# 🎨 Illustrator MCP Server Help

This server lets an AI agent drive Adobe Illustrator through ExtendScript.

## Tools

- ` + "`run`" + ` — execute ExtendScript code in Illustrator.
- ` + "`view`" + ` — capture a screenshot of the Illustrator window.
- ` + "`get_prompt_suggestions`" + ` — browse ready-to-use prompts, optionally filtered by category.
- ` + "`get_system_prompt`" + ` — fetch the system prompt that teaches the agent the scripting rules.
- ` + "`get_prompting_tips`" + ` — fetch tips for writing better design prompts.
- ` + "`get_advanced_template`" + ` — fetch a fill-in template for complex design briefs.
- ` + "`help`" + ` — this document.

## Workflow

1. Start with ` + "`get_system_prompt`" + ` so the agent knows the scripting rules.
2. Describe the artwork, or pick a starting point from ` + "`get_prompt_suggestions`" + `.
3. Execute small scripts with ` + "`run`" + `, one change at a time.
4. Inspect the result with ` + "`view`" + ` after every change.

## Suggestion categories

`)
	for _, c := range Categories() {
		fmt.Fprintf(&sb, "- `%s` — %s\n", c.Key, c.Title)
	}
	sb.WriteString("\n## Advanced templates\n\n")
	for _, name := range TemplateNames() {
		params, _ := TemplateParams(name)
		fmt.Fprintf(&sb, "- `%s` (parameters: %s)\n", name, strings.Join(params, ", "))
	}
	sb.WriteString(`
## Requirements

- Windows host with Adobe Illustrator installed and running.
- On other platforms the ` + "`run`" + ` and ` + "`view`" + ` tools report that the COM bridge is unavailable.
`)
	return sb.String()
}
