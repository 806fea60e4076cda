package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List every category with its listing count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, logger, err := root.newUsecase()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			categories, err := uc.Categories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range categories {
				fmt.Fprintf(out, "%-24s  %-36s  %d\n", c.ID, c.Name, c.Count)
			}
			return nil
		},
	}
}
