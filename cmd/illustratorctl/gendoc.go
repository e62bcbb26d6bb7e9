// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newGenDocCommand() *cobra.Command {
	gendocCommand := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate cli-reference pages",
		Args:   WrapArgsError(cobra.MinimumNArgs(1)),
		RunE:   gendocAction,
		Hidden: true,
	}
	gendocCommand.Flags().String("type", "man", "Output type (man, docsy, mcp)")
	gendocCommand.Flags().String("output", "", "Output directory")
	gendocCommand.Flags().String("prefix", "", "Install prefix")
	return gendocCommand
}

func gendocAction(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	output, err = filepath.Abs(output)
	if err != nil {
		return err
	}
	prefix, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return err
	}
	outputType, err := cmd.Flags().GetString("type")
	if err != nil {
		return err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	switch outputType {
	case "man":
		if err := genMan(cmd, dir); err != nil {
			return err
		}
	case "docsy":
		if err := genDocsy(cmd, dir); err != nil {
			return err
		}
	case "mcp":
		if err := genMCPDoc(cmd, dir); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported doc type: %q", outputType)
	}
	if output != "" && prefix != "" {
		if err := replaceAll(dir, output, prefix); err != nil {
			return err
		}
	}
	return replaceAll(dir, homeDir, "~")
}

func genMan(cmd *cobra.Command, dir string) error {
	logrus.Infof("Generating man %q", dir)
	// illustrator-mcp(1)
	filePath := filepath.Join(dir, "illustrator-mcp.1")
	md := "ILLUSTRATOR-MCP 1\n======" + `
# NAME
illustrator-mcp - ` + cmd.Root().Short + `
# SYNOPSIS
**illustratorctl** [_COMMAND_...]
# DESCRIPTION
illustrator-mcp drives Adobe Illustrator through its ExtendScript engine,
exposed over the Model Context Protocol.
# SEE ALSO
**illustratorctl**(1)
`
	out := md2man.Render([]byte(md))
	if err := os.WriteFile(filePath, out, 0o644); err != nil {
		return err
	}
	// illustratorctl(1)
	header := &doc.GenManHeader{
		Title:   "ILLUSTRATORCTL",
		Section: "1",
	}
	return doc.GenManTree(cmd.Root(), header, dir)
}

func genDocsy(cmd *cobra.Command, dir string) error {
	return doc.GenMarkdownTreeCustom(cmd.Root(), dir, func(s string) string {
		// Replace illustratorctl_prompt_tips with "prompt tips" for the docsy title
		name := filepath.Base(s)
		name = strings.ReplaceAll(name, "illustratorctl_", "")
		name = strings.ReplaceAll(name, "_", " ")
		name = strings.TrimSuffix(name, filepath.Ext(name))
		return fmt.Sprintf(`---
title: %s
weight: 3
---
`, name)
	}, func(s string) string {
		// Use ../ for move one folder up for docsy
		return "../" + strings.TrimSuffix(s, filepath.Ext(s))
	})
}

// genMCPDoc generates a reference page for the MCP tool surface from the
// live tool list.
func genMCPDoc(cmd *cobra.Command, dir string) error {
	ctx := cmd.Context()
	fName := filepath.Join(dir, "mcp.md")
	f, err := os.Create(fName)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, `---
title: MCP tools
weight: 99
---
illustratorctl implements the "Illustrator Tool Interface":
https://pkg.go.dev/github.com/illustrator-mcp/illustratorctl/pkg/mcp/iti

The Illustrator Tool Interface defines MCP (Model Context Protocol) tools
for driving Adobe Illustrator's scripting engine and for browsing the
prompt catalog. The tool names follow the original Python server, so
existing MCP clients keep working unchanged.

`)
	tools, err := inspectTools(ctx)
	if err != nil {
		return err
	}
	for _, tool := range tools {
		fmt.Fprintf(f, "## `%s`\n\n", tool.Name)
		if tool.Title != "" {
			fmt.Fprintf(f, "### Title\n\n%s\n\n", tool.Title)
		}
		if tool.Description != "" {
			fmt.Fprintf(f, "### Description\n\n%s\n\n", tool.Description)
		}
		if tool.InputSchema != nil {
			fmt.Fprint(f, "### Input Schema\n\n")
			schema, err := json.MarshalIndent(tool.InputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
		if tool.OutputSchema != nil {
			fmt.Fprint(f, "### Output Schema\n\n")
			schema, err := json.MarshalIndent(tool.OutputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
	}
	return f.Close()
}

// replaceAll replaces all occurrences of new with old, for all files in dir
func replaceAll(dir, old, new string) error {
	logrus.Infof("Replacing %q with %q", old, new)
	return filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if info.IsDir() {
			return filepath.SkipDir
		}
		in, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out := bytes.ReplaceAll(in, []byte(old), []byte(new))
		return os.WriteFile(path, out, 0o644)
	})
}
