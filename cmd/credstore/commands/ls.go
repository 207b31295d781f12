package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List key record files in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
