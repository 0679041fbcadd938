package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyagree/internal/crypto"
	"keyagree/internal/keyfile"
	"keyagree/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: "Generate a key pair on the configured curve. With --out the private key is\n" +
			"written to <out>.key (mode 0600) and the public key to <out>.pub; otherwise\n" +
			"both are printed as base64.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, fp, err := appCtx.Keys.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer memzero.Zero(enc.PrivateKey)

			w := cmd.OutOrStdout()
			if out == "" {
				fmt.Fprintf(w, "private: %s\n", crypto.B64(enc.PrivateKey))
				fmt.Fprintf(w, "public: %s\n", crypto.B64(enc.PublicKey))
				fmt.Fprintf(w, "fingerprint: %s\n", fp)
				return nil
			}

			if err := keyfile.Write(out+".key", enc.PrivateKey, keyfile.PrivateMode); err != nil {
				return fmt.Errorf("writing private key: %w", err)
			}
			if err := keyfile.Write(out+".pub", enc.PublicKey, keyfile.PublicMode); err != nil {
				return fmt.Errorf("writing public key: %w", err)
			}
			fmt.Fprintf(w, "Key pair written to %s.key and %s.pub\nFingerprint: %s\n", out, out, fp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "path prefix for <out>.key and <out>.pub")
	return cmd
}
