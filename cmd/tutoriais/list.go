package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/filter"
	"github.com/abelbrown/tutoriais/internal/session"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	var (
		category string
		typ      string
		query    string
		counts   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog listing for the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			logToStderr(e.cfg)

			out := cmd.OutOrStdout()
			if counts {
				return printCategories(out, e.catalog)
			}

			state := session.New()
			state.SetCategory(category)
			if t := strings.ToUpper(typ); t != filter.AllTypes {
				state.SetType(t)
			}
			state.SetSearch(query)
			printListing(out, state, state.Visible(e.catalog.Items()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", catalog.AllCategory, "category id")
	cmd.Flags().StringVarP(&typ, "type", "t", filter.AllTypes, "media type: article, video, image, document")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().BoolVar(&counts, "counts", false, "list categories with advisory and live counts")
	return cmd
}

func printListing(w io.Writer, state *session.State, items []catalog.Item) {
	fmt.Fprintf(w, "%s (%s)\n%s\n\n", state.Heading(), session.ResultLabel(len(items)), state.Subheading())
	if len(items) == 0 {
		fmt.Fprintln(w, "No tutorials match these filters.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tAUTHOR\tDATE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Type, it.Title, it.Author, it.Date)
	}
	tw.Flush()
}

// printCategories shows the advisory count next to the live one; they are
// not expected to agree.
func printCategories(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOUNT\tLIVE")
	for _, cat := range c.Categories() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", cat.ID, cat.Name, cat.Count, c.LiveCount(cat.ID))
	}
	return tw.Flush()
}
