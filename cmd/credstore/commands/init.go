package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store and generate credentials if none exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := appCtx.Store.Creds()
			fmt.Printf("Store ready at %s\n", appCtx.Store.Dir())
			fmt.Printf("Registration ID: %d\n", creds.RegistrationID)
			fmt.Printf("Identity fingerprint: %s\n", crypto.Fingerprint(creds.IdentityKey.Public))
			return nil
		},
	}
}
