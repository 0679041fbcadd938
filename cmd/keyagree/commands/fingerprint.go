package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyagree/internal/keyfile"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <public-key-file>",
		Short: "Print the fingerprint of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := keyfile.Read(args[0])
			if err != nil {
				return err
			}
			fp, err := appCtx.Keys.FingerprintPublicKey(b)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
