// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/illustrator"
	"github.com/illustrator-mcp/illustratorctl/pkg/mcp/iti"
)

// unavailableResult degrades to an explanatory text instead of a tool error
// when the COM bridge does not exist on this platform, so the agent can tell
// the operator what to fix.
func unavailableResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: illustrator.ErrUnavailable.Error()},
		},
	}
}

func (ts *ToolSet) Run(ctx context.Context,
	_ *mcp.CallToolRequest, args iti.RunParams,
) (*mcp.CallToolResult, *iti.RunResult, error) {
	if args.Code == "" {
		return nil, nil, errors.New("no code provided")
	}
	logrus.Debugf("running an ExtendScript of %d bytes", len(args.Code))
	if err := ts.scripter.RunScript(ctx, args.Code); err != nil {
		if errors.Is(err, illustrator.ErrUnavailable) {
			return unavailableResult(), nil, nil
		}
		return nil, nil, err
	}
	res := &iti.RunResult{Status: "Script executed successfully"}
	callToolRes := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: res.Status},
		},
		StructuredContent: res,
	}
	return callToolRes, res, nil
}

func (ts *ToolSet) View(ctx context.Context,
	_ *mcp.CallToolRequest, _ iti.ViewParams,
) (*mcp.CallToolResult, *iti.ViewResult, error) {
	img, err := ts.scripter.CaptureWindow(ctx)
	if err != nil {
		if errors.Is(err, illustrator.ErrUnavailable) {
			return unavailableResult(), nil, nil
		}
		return nil, nil, err
	}
	res := &iti.ViewResult{MimeType: "image/jpeg", Size: len(img)}
	callToolRes := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.ImageContent{MIMEType: res.MimeType, Data: img},
		},
		StructuredContent: res,
	}
	return callToolRes, res, nil
}
