// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"al.essio.dev/pkg/shellescape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/illustrator"
	"github.com/illustrator-mcp/illustratorctl/pkg/logrusutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/mcp/toolset"
	"github.com/illustrator-mcp/illustratorctl/pkg/version"
)

func newServeCommand() *cobra.Command {
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Illustrator MCP tools over stdio",
		Long: `Serve the Illustrator MCP tools over stdio.

Expected to be executed via an AI agent, not by a human`,
		Args: WrapArgsError(cobra.NoArgs),
		RunE: serveAction,
	}
	serveCommand.Flags().String("log-file", "", "Also write JSON logs to this file (defaults to log.file from config.yaml)")
	return serveCommand
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "illustrator",
		Title:   "Adobe Illustrator, driven through its ExtendScript engine",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server drives Adobe Illustrator through ExtendScript (JavaScript).

Call get_system_prompt first to learn the scripting rules, then iterate:
run a small script, view the result, refine.
`,
	}
	if runtime.GOOS != "windows" {
		serverOpts.Instructions += fmt.Sprintf(`
NOTE: the COM bridge requires Windows; the host OS is %s, so the run and
view tools will report that the bridge is unavailable.
`, cases.Title(language.English).String(runtime.GOOS))
	}
	return mcp.NewServer(impl, serverOpts)
}

// printClientConfigHint prints a ready-to-copy config snippet for MCP
// clients to stderr, as the Python server did on startup.
func printClientConfigHint() {
	exe, err := os.Executable()
	if err != nil {
		logrus.WithError(err).Debug("failed to resolve the executable path")
		exe = "illustratorctl"
	}
	snippet := map[string]any{
		"mcpServers": map[string]any{
			"illustrator": map[string]any{
				"command": exe,
				"args":    []string{"serve"},
			},
		},
	}
	j, err := json.MarshalIndent(snippet, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Add this MCP config in your client settings (or run %s manually):\n%s\n",
		shellescape.QuoteCommand([]string{exe, "serve"}), string(j))
}

func serveAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	if logFile == "" {
		logFile = *cfg.Log.File
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logrus.AddHook(logrusutil.NewJSONFileHook(f))
		logrus.Debugf("logging to %q", logFile)
	}

	ts := toolset.New(illustrator.New())
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return err
	}
	printClientConfigHint()
	logrus.Info("Serving MCP over stdio")
	transport := &mcp.StdioTransport{}
	return server.Run(ctx, transport)
}
