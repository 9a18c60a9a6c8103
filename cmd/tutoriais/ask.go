package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <id> <question...>",
		Short: "Ask the assistant a question about one tutorial",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args[1:], " "))
			if question == "" {
				return errors.New("question must not be empty")
			}

			e, err := opts.load()
			if err != nil {
				return err
			}
			logToStderr(e.cfg)

			item, err := e.catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			answer := newAssistant(e.cfg).AskAboutContent(cmd.Context(), item.Content, question)
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
