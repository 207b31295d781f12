package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func rmCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "rm [<category> <id>...]",
		Short: "Delete key records (removing a missing record is a no-op)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := appCtx.Store.Keys.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Cleared all key records")
				return nil
			}
			if len(args) < 2 {
				return fmt.Errorf("need a category and at least one id, or --all")
			}

			category := domain.Category(args[0])
			updates := domain.Updates{category: {}}
			for _, id := range args[1:] {
				updates[category][id] = nil
			}
			if err := appCtx.Store.Keys.Set(cmd.Context(), updates); err != nil {
				return err
			}
			fmt.Printf("Removed %d record(s) from %s\n", len(args)-1, category)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "remove every key record (credentials stay)")
	return cmd
}
