package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/crypto"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print a credential summary (no secret material)",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := appCtx.Store.Creds()
			fmt.Printf("Registration ID:   %d\n", creds.RegistrationID)
			fmt.Printf("Noise key:         %s\n", crypto.Fingerprint(creds.NoiseKey.Public))
			fmt.Printf("Identity key:      %s\n", crypto.Fingerprint(creds.IdentityKey.Public))
			fmt.Printf("Signing key:       %s\n", crypto.Fingerprint(creds.SigningKey.Public))
			fmt.Printf("Signed prekey:     %s (id %d)\n",
				crypto.Fingerprint(creds.SignedPreKey.KeyPair.Public), creds.SignedPreKey.ID)
			fmt.Printf("Next prekey ID:    %d\n", creds.NextPreKeyID)
			return nil
		},
	}
}
