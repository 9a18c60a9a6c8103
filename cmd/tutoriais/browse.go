package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/abelbrown/tutoriais/internal/activity"
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/chat"
	"github.com/abelbrown/tutoriais/internal/logging"
	"github.com/abelbrown/tutoriais/internal/session"
	"github.com/abelbrown/tutoriais/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCommand(opts *options) *cobra.Command {
	var open string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return runBrowse(cmd.Context(), e, open)
		},
	}
	cmd.Flags().StringVar(&open, "open", "", "start on the detail view of this tutorial id")
	return cmd
}

func runBrowse(ctx context.Context, e *env, openID string) error {
	// The TUI owns the terminal, so logs go to a file.
	if err := logging.Init(e.cfg.Log.Dir, e.cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	assistant := newAssistant(e.cfg)
	recorder := activity.NewRecorder(activity.DefaultRingSize)

	// Each detail visit derives its own context from ctx, so leaving a view
	// cancels its summary even while it waits on the rate limiter.
	cfg := ui.AppConfig{
		Catalog:  e.catalog,
		Context:  ctx,
		Activity: recorder,
		Summarize: func(ctx context.Context, item catalog.Item, act session.Activation) tea.Cmd {
			return func() tea.Msg {
				return ui.SummaryLoaded{
					ItemID:     item.ID,
					Activation: act,
					Summary:    assistant.Summarize(ctx, item.Content),
				}
			}
		},
		Ask: func(ctx context.Context, item catalog.Item, turn chat.Turn) tea.Cmd {
			return func() tea.Msg {
				return ui.AnswerReceived{
					Turn:   turn,
					Answer: assistant.AskAboutContent(ctx, item.Content, turn.Question),
				}
			}
		},
	}
	if openID != "" {
		cfg.StartPath = "/tutorial/" + url.PathEscape(openID)
	}

	program := tea.NewProgram(ui.NewApp(cfg), tea.WithAltScreen())
	_, err := program.Run()

	// In-flight assistant calls are abandoned.
	cancel()
	recorder.Record(activity.Event{Kind: activity.KindShutdown})
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
