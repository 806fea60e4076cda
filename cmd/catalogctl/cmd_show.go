package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print every field of one listing as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, logger, err := root.newUsecase()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			listing, err := uc.GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(listing)
		},
	}
}
