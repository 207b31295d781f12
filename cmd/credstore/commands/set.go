package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <id> <json|->",
		Short: "Upsert one key record from a JSON value ('-' reads stdin)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := domain.Category(args[0])
			id := args[1]

			raw := []byte(args[2])
			if args[2] == "-" {
				var err error
				raw, err = io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
			}
			if !json.Valid(raw) {
				return fmt.Errorf("value is not valid JSON")
			}

			updates := domain.Updates{
				category: {id: json.RawMessage(raw)},
			}
			if err := appCtx.Store.Keys.Set(cmd.Context(), updates); err != nil {
				return err
			}
			fmt.Printf("Wrote %s/%s\n", category, id)
			return nil
		},
	}
}
