package commands

import (
	"github.com/spf13/cobra"

	"keyagree/internal/app"
	"keyagree/internal/crypto"
)

var (
	appCtx *app.Wire

	curveName   string
	contextInfo string

	saltBytes  int
	iterations int
	digestBits int
	policy     bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:           "keyagree",
		Short:         "Triple Diffie-Hellman key agreement and password stretching",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			cfg.Curve = crypto.Curve(curveName)
			cfg.ContextInfo = contextInfo
			cfg.SaltBytes = saltBytes
			cfg.Iterations = iterations
			cfg.DigestBits = digestBits
			cfg.PasswordPolicy = policy

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&curveName, "curve", string(defaults.Curve), "key-agreement curve (P-256, P-384, P-521, X25519)")
	root.PersistentFlags().StringVar(&contextInfo, "context", defaults.ContextInfo, "HKDF context label, must match the peer")

	root.AddCommand(keygenCmd(), fingerprintCmd(), handshakeCmd(), passwordCmd(defaults))
	return root
}
