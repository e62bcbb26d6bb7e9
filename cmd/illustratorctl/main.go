// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/version"
)

func main() {
	err := newApp().Execute()
	osutil.HandleExitError(err)
	if err != nil {
		logrus.Fatal(err)
	}
}

func processGlobalFlags(rootCmd *cobra.Command) error {
	if debug, _ := rootCmd.Flags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	l, _ := rootCmd.Flags().GetString("log-level")
	if l != "" {
		lvl, err := logrus.ParseLevel(l)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
	}

	logFormat, _ := rootCmd.Flags().GetString("log-format")
	switch logFormat {
	case "json":
		formatter := new(logrus.JSONFormatter)
		logrus.StandardLogger().SetFormatter(formatter)
	case "text":
		// logrus use text format by default.
		if runtime.GOOS == "windows" && isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			formatter := new(logrus.TextFormatter)
			// the default setting does not recognize cygwin on windows
			formatter.ForceColors = true
			logrus.StandardLogger().SetFormatter(formatter)
		}
	default:
		return fmt.Errorf("unsupported log-format: %q", logFormat)
	}
	return nil
}

func newApp() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "illustratorctl",
		Short:   "Bootstrap and serve the Illustrator MCP server",
		Version: strings.TrimPrefix(version.Version, "v"),
		Example: `  Bootstrap the environment and launch the Python server:
  $ illustratorctl start

  Serve the MCP tools natively over stdio (no Python needed):
  $ illustratorctl serve

  Check the environment without changing it:
  $ illustratorctl doctor`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.PersistentFlags().String("log-level", "", "Set the logging level [trace, debug, info, warn, error]")
	rootCmd.PersistentFlags().String("log-format", "text", "Set the logging format [text, json]")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug mode")
	rootCmd.PersistentFlags().Bool("tty", isatty.IsTerminal(os.Stdout.Fd()), "Enable TUI interactions such as confirmation prompts. Defaults to true when stdout is a terminal. Set to false for automation.")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if err := processGlobalFlags(rootCmd); err != nil {
			return err
		}
		// Make sure either $HOME or $ILLUSTRATOR_MCP_HOME is defined, so we
		// don't need to check for errors later
		if _, err := dirnames.Dir(); err != nil {
			return err
		}
		return nil
	}

	rootCmd.AddCommand(
		newStartCommand(),
		newServeCommand(),
		newInfoCommand(),
		newDoctorCommand(),
		newValidateCommand(),
		newPruneCommand(),
		newLogsCommand(),
		newPromptCommand(),
		newGenDocCommand(),
		newGenSchemaCommand(),
	)

	return rootCmd
}

// WrapArgsError annotates cobra args error with some context, so the error message is more user-friendly.
func WrapArgsError(argFn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := argFn(cmd, args)
		if err == nil {
			return nil
		}

		return fmt.Errorf("%q %s.\nSee '%s --help'.\n\nUsage:  %s\n\n%s",
			cmd.CommandPath(), err.Error(),
			cmd.CommandPath(),
			cmd.UseLine(), cmd.Short,
		)
	}
}
