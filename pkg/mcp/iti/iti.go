// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package iti provides the "Illustrator Tool Interface":
// the MCP (Model Context Protocol) tool definitions for driving Adobe
// Illustrator's scripting engine and for browsing the prompt catalog.
//
// The tool names and semantics follow the original Python server, so
// existing MCP clients keep working unchanged:
//   - run: execute ExtendScript code
//   - view: screenshot the Illustrator window
//   - get_prompt_suggestions, get_system_prompt, get_prompting_tips,
//     get_advanced_template, help: static prompt catalog
package iti
