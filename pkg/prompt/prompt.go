// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt holds the static prompt catalog of the server: categorized
// prompt suggestions, the system prompt, prompting tips, and the advanced
// templates with `{placeholder}` parameters.
package prompt

import (
	"fmt"
	"strings"
)

// Category is one group of prompt suggestions. The order of Categories() is
// the presentation order.
type Category struct {
	// Key is the short name accepted by the get_prompt_suggestions filter.
	Key string
	// Title is the full heading, including the emoji.
	Title string
	// Prompts are ready-to-use example prompts.
	Prompts []string
}

var categories = []Category{
	{
		Key:   "basic_shapes",
		Title: "🎨 Basic Shapes & Geometry",
		Prompts: []string{
			"Create a grid of 5x5 blue circles, each 50pt in diameter, with 20pt spacing",
			"Draw a golden spiral using concentric rectangles with the fibonacci ratio",
			"Make a honeycomb pattern of hexagons filling an A4 artboard",
			"Create 10 concentric circles with decreasing opacity from 100% to 10%",
		},
	},
	{
		Key:   "typography",
		Title: "📝 Typography & Text",
		Prompts: []string{
			"Set the word 'HELLO' in 120pt bold type and convert it to outlines",
			"Create a circular text path with the phrase 'around the world' repeated",
			"Make a drop cap layout: one large initial letter with wrapped body text",
			"Apply a gradient fill from orange to purple across a headline",
		},
	},
	{
		Key:   "logos",
		Title: "🏢 Logos & Branding",
		Prompts: []string{
			"Design a minimalist lettermark logo from the initials 'AB' using two overlapping circles",
			"Create a badge-style logo with a banner, a star, and the year 1998",
			"Make a negative-space logo of an arrow hidden between two letters",
			"Draw a monoline mountain logo inside a circular frame",
		},
	},
	{
		Key:   "illustrations",
		Title: "🌆 Illustrations & Scenes",
		Prompts: []string{
			"Illustrate a flat-design city skyline at sunset with five buildings",
			"Create a low-poly landscape with mountains, a lake, and a rising sun",
			"Draw an isometric illustration of a desk with a laptop, a mug, and a plant",
			"Make a seamless pattern of stylized clouds and stars",
		},
	},
	{
		Key:   "icons",
		Title: "🎭 Icons & UI Elements",
		Prompts: []string{
			"Create a set of 6 line icons for a weather app: sun, cloud, rain, snow, wind, fog",
			"Design a rounded app icon with a paper plane on a blue gradient",
			"Make toggle switch components in both on and off states",
			"Draw a hamburger menu icon with 3pt stroke weight and rounded caps",
		},
	},
	{
		Key:   "artistic",
		Title: "🎨 Artistic & Creative",
		Prompts: []string{
			"Generate an abstract composition of overlapping translucent triangles",
			"Create a halftone dot effect transitioning from dense to sparse",
			"Draw a continuous single-line portrait outline of a cat",
			"Make a retro sunburst background with alternating rays",
		},
	},
	{
		Key:   "charts",
		Title: "📊 Charts & Infographics",
		Prompts: []string{
			"Create a donut chart with four segments: 40%, 30%, 20%, 10%",
			"Draw a horizontal bar chart comparing five monthly values",
			"Make a timeline infographic with five milestones and connecting arrows",
			"Design a pictogram grid showing 7 of 10 filled person icons",
		},
	},
	{
		Key:   "print",
		Title: "🏷️ Print & Layout",
		Prompts: []string{
			"Set up a tri-fold brochure layout with margins and fold guides",
			"Create a business card layout at 3.5x2 inches with bleed marks",
			"Make an event poster layout with a headline, a subhead, and a footer band",
			"Lay out a price tag with a die-cut circle hole and a dashed cut line",
		},
	},
}

// Categories returns the suggestion catalog in presentation order.
func Categories() []Category {
	return categories
}

// CategoryKeys returns the filter keys in presentation order.
func CategoryKeys() []string {
	keys := make([]string, len(categories))
	for i, c := range categories {
		keys[i] = c.Key
	}
	return keys
}

// LookupCategory returns the category for the given filter key.
func LookupCategory(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// RenderSuggestions renders the catalog as markdown. An empty key renders
// every category; an unknown key is an error naming the valid keys.
func RenderSuggestions(key string) (string, error) {
	var sb strings.Builder
	if key == "" {
		sb.WriteString("# 🎨 Illustrator Prompt Suggestions\n\n")
		for _, c := range categories {
			fmt.Fprintf(&sb, "## %s\n\n", c.Title)
			for _, p := range c.Prompts {
				fmt.Fprintf(&sb, "• %s\n", p)
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil
	}
	c, ok := LookupCategory(key)
	if !ok {
		return "", fmt.Errorf("category %q not found; available categories: %s",
			key, strings.Join(CategoryKeys(), ", "))
	}
	fmt.Fprintf(&sb, "**%s**\n\n", c.Title)
	for _, p := range c.Prompts {
		fmt.Fprintf(&sb, "• %s\n", p)
	}
	return sb.String(), nil
}

// SystemPrompt returns the system prompt template that guides an AI agent
// working against the Illustrator scripting surface.
func SystemPrompt() string {
	return `You are controlling Adobe Illustrator through ExtendScript (JavaScript).

Rules:
- Always operate on app.activeDocument; create a document first if none is open.
- Use points as the unit (1 inch = 72 pt). The y axis grows downward from the top-left of the artboard.
- Build artwork from pathItems, textFrames, and groupItems; set fillColor/strokeColor with new RGBColor() objects.
- Run one self-contained script per step and view the result before continuing.
- Prefer many small scripts over one large script, so a single failure does not destroy prior work.
- Never call app.quit() or close documents without saving unless explicitly asked.
`
}

// Tips returns the prompting tips, one markdown line each.
func Tips() []string {
	return []string{
		"1. **Be specific about dimensions** — say \"a 100pt red circle at (200, 300)\", not \"a circle\".",
		"2. **Name colors precisely** — RGB values or well-known names; \"brand blue\" means nothing to a script.",
		"3. **Work incrementally** — ask for one element, view the result, then refine.",
		"4. **Reference the coordinate system** — the origin is the top-left of the artboard and y grows downward.",
		"5. **Ask for grouping** — grouped elements are easier to move, scale, and restyle later.",
		"6. **Request a view after each change** — the screenshot is the only feedback loop.",
		"7. **Use the advanced templates** — they carry the structure a complex brief needs.",
	}
}

// RenderTips renders the tips as a markdown document.
func RenderTips() string {
	var sb strings.Builder
	sb.WriteString("# 💡 Prompting Tips for Adobe Illustrator\n\n")
	for _, tip := range Tips() {
		sb.WriteString(tip)
		sb.WriteString("\n")
	}
	return sb.String()
}
