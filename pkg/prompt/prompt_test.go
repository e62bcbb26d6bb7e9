// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Assert(t, len(cats) == 8)
	for _, c := range cats {
		assert.Assert(t, c.Key != "")
		assert.Assert(t, c.Title != "")
		assert.Assert(t, len(c.Prompts) > 0, "category %q has no prompts", c.Key)
	}
}

func TestRenderSuggestions(t *testing.T) {
	t.Run("all categories", func(t *testing.T) {
		out, err := RenderSuggestions("")
		assert.NilError(t, err)
		for _, c := range Categories() {
			assert.Assert(t, strings.Contains(out, c.Title))
		}
	})

	t.Run("single category", func(t *testing.T) {
		out, err := RenderSuggestions("logos")
		assert.NilError(t, err)
		assert.Assert(t, strings.Contains(out, "Logos & Branding"))
		assert.Assert(t, !strings.Contains(out, "Typography"))
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := RenderSuggestions("sculptures")
		assert.ErrorContains(t, err, `category "sculptures" not found`)
		assert.ErrorContains(t, err, "basic_shapes")
	})
}

func TestFormatTemplate(t *testing.T) {
	t.Run("all parameters filled", func(t *testing.T) {
		out, err := FormatTemplate("logo_design", map[string]string{
			"company_name": "Acme",
			"industry":     "technology",
			"style":        "minimalist",
			"colors":       "blue and white",
			"elements":     "lettermark",
			"size":         "1024x1024",
		})
		assert.NilError(t, err)
		assert.Assert(t, strings.Contains(out, "Acme"))
		assert.Assert(t, !strings.Contains(out, "{"))
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := FormatTemplate("missing_template", nil)
		assert.ErrorContains(t, err, `template "missing_template" not found`)
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := FormatTemplate("logo_design", map[string]string{"company_name": "Acme"})
		var missingErr *MissingParamError
		assert.Assert(t, errors.As(err, &missingErr))
		assert.Equal(t, missingErr.Param, "industry")
		assert.Assert(t, strings.Contains(missingErr.Template, "{company_name}"))
	})
}

func TestTemplateParams(t *testing.T) {
	params, err := TemplateParams("logo_design")
	assert.NilError(t, err)
	assert.DeepEqual(t, params, []string{"company_name", "industry", "style", "colors", "elements", "size"})
}

func TestTemplateTitle(t *testing.T) {
	assert.Equal(t, TemplateTitle("logo_design"), "Logo Design")
	assert.Equal(t, TemplateTitle("icon_set"), "Icon Set")
}

func TestHelpMentionsEveryTool(t *testing.T) {
	help := Help()
	for _, tool := range []string{"run", "view", "get_prompt_suggestions", "get_system_prompt", "get_prompting_tips", "get_advanced_template", "help"} {
		assert.Assert(t, strings.Contains(help, "`"+tool+"`"), "help does not mention %q", tool)
	}
}
