// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// templates are the advanced prompt templates, keyed by type. Parameters
// appear as `{name}` placeholders.
var templates = map[string]string{
	"logo_design": `Design a logo for {company_name}, a company in the {industry} industry.

Style: {style}
Colors: {colors}
Key elements: {elements}
Artboard size: {size}

Process:
1. Create a new document at the given size.
2. Block out the composition with basic shapes first.
3. Refine the key elements and apply the color palette.
4. Add the company name in a complementary typeface.
5. Group the finished logo and center it on the artboard.`,

	"illustration": `Create an illustration of {subject} in a {style} style.

Mood: {mood}
Color palette: {colors}
Artboard size: {size}

Process:
1. Create a new document at the given size.
2. Lay down the background and establish the horizon or focal point.
3. Build the main subject from simple shapes, back to front.
4. Add secondary elements and details that support the mood.
5. Apply the palette consistently and group related elements.`,

	"infographic": `Create an infographic about {topic}.

Data to visualize: {data}
Style: {style}
Color palette: {colors}
Artboard size: {size}

Process:
1. Create a new document at the given size.
2. Add a headline band with the topic at the top.
3. Divide the remaining space into one section per data point.
4. Visualize each data point with a chart or pictogram.
5. Keep typography consistent: one face for labels, one for numbers.`,

	"icon_set": `Design a set of {count} icons on the theme of {theme}.

Style: {style}
Stroke/fill treatment: {treatment}
Icon size: {size}

Process:
1. Create a new document with a grid of {count} equal cells.
2. Draw each icon inside its cell, leaving consistent padding.
3. Keep stroke weights and corner radii identical across the set.
4. Align all icons to the pixel grid.
5. Group each icon individually, then group the whole set.`,
}

// templateOrder is the presentation order of TemplateNames.
var templateOrder = []string{"logo_design", "illustration", "infographic", "icon_set"}

var placeholderRegexp = regexp.MustCompile(`\{([a-z_]+)\}`)

// TemplateNames returns the template types in presentation order.
func TemplateNames() []string {
	return templateOrder
}

// Template returns the raw template with its placeholders intact.
func Template(name string) (string, error) {
	t, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found; available templates: %s",
			name, strings.Join(templateOrder, ", "))
	}
	return t, nil
}

// TemplateParams returns the placeholder names of the template, in order of
// first appearance.
func TemplateParams(name string) ([]string, error) {
	t, err := Template(name)
	if err != nil {
		return nil, err
	}
	var params []string
	seen := map[string]bool{}
	for _, m := range placeholderRegexp.FindAllStringSubmatch(t, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			params = append(params, m[1])
		}
	}
	return params, nil
}

// MissingParamError reports a placeholder that was left unfilled. It carries
// the raw template so callers can show the user what to fill in.
type MissingParamError struct {
	Template string
	Name     string
	Param    string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("template %q is missing parameter %q", e.Name, e.Param)
}

// FormatTemplate substitutes the given parameters into the template.
// An unknown template is an error; the first unfilled placeholder yields a
// *MissingParamError.
func FormatTemplate(name string, params map[string]string) (string, error) {
	t, err := Template(name)
	if err != nil {
		return "", err
	}
	out := t
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	if m := placeholderRegexp.FindStringSubmatch(out); m != nil {
		return "", &MissingParamError{Template: t, Name: name, Param: m[1]}
	}
	return out, nil
}

// TemplateTitle renders the template type as a human heading,
// e.g. "logo_design" becomes "Logo Design".
func TemplateTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
