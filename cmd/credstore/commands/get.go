package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category> <id>...",
		Short: "Fetch key records; absent records print as null",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := domain.Category(args[0])
			ids := args[1:]

			values, err := appCtx.Store.Keys.Get(cmd.Context(), category, ids)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(values, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
