package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/filter"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const showRelatedLimit = 3

func newShowCommand(opts *options) *cobra.Command {
	var (
		withSummary bool
		raw         bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one tutorial, optionally with its AI summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			logToStderr(e.cfg)

			item, err := e.catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			// Without a summary the excerpt stands in, as in the detail view.
			summary := ""
			if withSummary {
				summary = newAssistant(e.cfg).Summarize(cmd.Context(), item.Content)
			}
			related := filter.Related(e.catalog.Items(), item, showRelatedLimit)
			return printItem(cmd.OutOrStdout(), item, summary, related, raw)
		},
	}
	cmd.Flags().BoolVarP(&withSummary, "summary", "s", false, "ask the assistant for a summary")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown body without rendering")
	return cmd
}

func printItem(w io.Writer, item catalog.Item, summary string, related []catalog.Item, raw bool) error {
	fmt.Fprintf(w, "%s\n[%s] %s\n", item.Title, item.Type, strings.ToUpper(strings.Join(item.Tags, " ")))
	fmt.Fprintf(w, "%s · %s\n\n", item.Author, item.Date)

	if summary == "" {
		summary = item.Excerpt
	}
	fmt.Fprintf(w, "AI SUMMARY\n%s\n\n", summary)

	switch att := item.Attachment().(type) {
	case catalog.VideoPlayer:
		if att.URL != "" {
			fmt.Fprintf(w, "Video: %s\n\n", att.URL)
		}
	case catalog.ImageFrame:
		fmt.Fprintf(w, "Image: %s\n\n", att.URL)
	case catalog.DocumentPreview:
		if att.URL == "" {
			fmt.Fprintln(w, "Document preview not available for this item.")
			fmt.Fprintln(w)
		} else {
			fmt.Fprintf(w, "Document: %s\n\n", att.URL)
		}
	}

	body := item.Content
	if !raw {
		rendered, err := glamour.Render(item.Content, "dark")
		if err != nil {
			return fmt.Errorf("failed to render content: %w", err)
		}
		body = rendered
	}
	fmt.Fprintln(w, strings.TrimRight(body, "\n"))

	if len(related) > 0 {
		fmt.Fprintln(w, "\nRelated Content")
		for _, r := range related {
			fmt.Fprintf(w, "  %s  [%s] %s\n", r.ID, r.Type, r.Title)
		}
	}
	return nil
}
