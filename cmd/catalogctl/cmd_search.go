package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jo3qma.com/zona_apk/internal/domain/model"
)

func newSearchCmd(root *rootOptions) *cobra.Command {
	var (
		offset   int
		category string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search listings by name, developer or description",
		Long: `Prints one page of matching listings, newest first.
Without a query every listing matches. --category filters by category id and takes
precedence over the query.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 {
				return fmt.Errorf("--offset must not be negative: %d", offset)
			}

			uc, logger, err := root.newUsecase()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			cursor := model.NewCursor(uc.PageSize())
			cursor.Offset = offset

			page, err := uc.Search(cmd.Context(), cursor.Params(query, category))
			if err != nil {
				return err
			}
			printCards(cmd, page, cursor)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "number of matching listings to skip")
	cmd.Flags().StringVar(&category, "category", "", "category id to filter by")
	return cmd
}

func printCards(cmd *cobra.Command, page *model.CardPage, cursor model.Cursor) {
	out := cmd.OutOrStdout()

	if len(page.Cards) == 0 {
		fmt.Fprintln(out, "No se encontraron aplicaciones.")
		return
	}

	for _, c := range page.Cards {
		score := c.ScoreLabel
		if score == "" {
			score = "-"
		}
		fmt.Fprintf(out, "%-28s  %-23s  %4s  %s\n", c.DisplayName, c.DisplayDeveloper, score, c.DetailPath)
	}

	shown := cursor.Offset + len(page.Cards)
	fmt.Fprintf(out, "\n%d-%d of %d\n", cursor.Offset+1, shown, page.TotalCount)

	if next := cursor.Advance(); page.HasNext && next.HasMore(page.TotalCount) {
		fmt.Fprintf(out, "more results: --offset %d\n", next.Offset)
	}
}
