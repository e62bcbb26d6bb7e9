// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package iti

import "github.com/modelcontextprotocol/go-sdk/mcp"

var Run = &mcp.Tool{
	Name:        "run",
	Description: `Run ExtendScript code in Adobe Illustrator.`,
}

type RunParams struct {
	Code string `json:"code" jsonschema:"The ExtendScript (JavaScript) code to execute in Illustrator."`
}

type RunResult struct {
	Status string `json:"status" jsonschema:"A short human-readable execution status."`
}

var View = &mcp.Tool{
	Name:        "view",
	Description: `View a screenshot of the Adobe Illustrator window.`,
}

type ViewParams struct{}

type ViewResult struct {
	MimeType string `json:"mime_type" jsonschema:"The MIME type of the captured image."`
	Size     int    `json:"size" jsonschema:"The size of the captured image in bytes."`
}
