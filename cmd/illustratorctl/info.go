// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/bootstrap"
	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/illustrator"
	"github.com/illustrator-mcp/illustratorctl/pkg/mcp/toolset"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
	"github.com/illustrator-mcp/illustratorctl/pkg/version"
)

func newInfoCommand() *cobra.Command {
	infoCommand := &cobra.Command{
		Use:   "info",
		Short: "Show diagnostic information and the MCP tool list",
		Args:  WrapArgsError(cobra.NoArgs),
		RunE:  infoAction,
	}
	return infoCommand
}

type Info struct {
	Version    string      `json:"version"`
	Home       string      `json:"home"`
	ConfigFile string      `json:"configFile"`
	ServerDir  string      `json:"serverDir"`
	Entrypoint string      `json:"entrypoint"`
	Python     *PythonInfo `json:"python,omitempty"`
	Env        *EnvInfo    `json:"env"`
	Tools      []*mcp.Tool `json:"tools"`
}

// PythonInfo describes the interpreter that would create the virtual
// environment.
type PythonInfo struct {
	Exe     string `json:"exe"`
	Version string `json:"version,omitempty"`
}

// EnvInfo describes the virtual environment.
type EnvInfo struct {
	Dir             string   `json:"dir"`
	Requirements    string   `json:"requirements"`
	Imports         []string `json:"imports"`
	Exists          bool     `json:"exists"`
	Healthy         bool     `json:"healthy"`
	UnhealthyReason string   `json:"unhealthyReason,omitempty"`
	Size            string   `json:"size,omitempty"`
}

func infoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
	return err
}

func inspectInfo(ctx context.Context) (*Info, error) {
	home, err := dirnames.Dir()
	if err != nil {
		return nil, err
	}
	configFile, err := config.DefaultFilePath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}
	env := pyenv.FromConfig(cfg)
	runner := executil.SystemRunner{}

	info := &Info{
		Version:    strings.TrimPrefix(version.Version, "v"),
		Home:       home,
		ConfigFile: configFile,
		ServerDir:  *cfg.Server.Dir,
		Entrypoint: cfg.EntrypointPath(),
		Env: &EnvInfo{
			Dir:          env.Dir,
			Requirements: env.Requirements,
			Imports:      env.Imports,
			Exists:       osutil.FileExists(env.Python()),
		},
	}

	if py, err := pyenv.FindSystemPython(runner, env.Candidates); err == nil {
		info.Python = &PythonInfo{Exe: py.Exe}
		if v, err := py.Version(ctx, runner); err == nil {
			info.Python.Version = v.String()
		}
	}

	if info.Env.Exists {
		if err := bootstrap.Healthy(ctx, runner, env); err != nil {
			info.Env.UnhealthyReason = err.Error()
		} else {
			info.Env.Healthy = true
		}
		if size, err := osutil.DirSize(env.Dir); err == nil && size > 0 {
			info.Env.Size = units.HumanSize(float64(size))
		}
	}

	tools, err := inspectTools(ctx)
	if err != nil {
		return nil, err
	}
	info.Tools = tools
	return info, nil
}

// inspectTools enumerates the MCP tools by running a server and a client
// over in-memory transports.
func inspectTools(ctx context.Context) ([]*mcp.Tool, error) {
	ts := toolset.New(illustrator.New())
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	return toolsResult.Tools, nil
}
