// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/prompt"
)

func newPromptCommand() *cobra.Command {
	promptCommand := &cobra.Command{
		Use:   "prompt",
		Short: "Browse the prompt catalog from the terminal",
	}
	promptCommand.AddCommand(
		newPromptSuggestionsCommand(),
		newPromptTipsCommand(),
		newPromptSystemCommand(),
		newPromptTemplateCommand(),
	)
	return promptCommand
}

func newPromptSuggestionsCommand() *cobra.Command {
	suggestionsCommand := &cobra.Command{
		Use:   "suggestions",
		Short: "Show categorized prompt suggestions",
		Args:  WrapArgsError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := cmd.Flags().GetString("category")
			if err != nil {
				return err
			}
			out, err := prompt.RenderSuggestions(category)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	suggestionsCommand.Flags().String("category", "", "Filter by category ("+fmt.Sprint(prompt.CategoryKeys())+")")
	return suggestionsCommand
}

func newPromptTipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show prompting tips",
		Args:  WrapArgsError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), prompt.RenderTips())
			return err
		},
	}
}

func newPromptSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show the system prompt template",
		Args:  WrapArgsError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), prompt.SystemPrompt())
			return err
		},
	}
}

func newPromptTemplateCommand() *cobra.Command {
	templateCommand := &cobra.Command{
		Use:   "template TYPE",
		Short: "Show an advanced template, optionally filled with parameters",
		Args:  WrapArgsError(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := cmd.Flags().GetStringToString("param")
			if err != nil {
				return err
			}
			name := args[0]
			if len(params) == 0 {
				raw, err := prompt.Template(name)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
				return err
			}
			out, err := prompt.FormatTemplate(name, params)
			if err != nil {
				var missingErr *prompt.MissingParamError
				if errors.As(err, &missingErr) {
					return fmt.Errorf("%w; parameters: %v", err, mustParams(name))
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	templateCommand.Flags().StringToString("param", nil, "Template parameter (e.g. --param company_name=Acme)")
	return templateCommand
}

func mustParams(name string) []string {
	params, _ := prompt.TemplateParams(name)
	return params
}
