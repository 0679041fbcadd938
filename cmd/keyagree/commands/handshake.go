package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyagree/internal/domain"
	"keyagree/internal/keyfile"
	"keyagree/internal/util/memzero"
)

// handshakeCmd runs the triple Diffie-Hellman handshake from key files and
// prints the derived session keys.
func handshakeCmd() *cobra.Command {
	var (
		roleName          string
		identityPath      string
		ephemeralPath     string
		peerIdentityPath  string
		peerEphemeralPath string
	)
	cmd := &cobra.Command{
		Use:   "handshake",
		Short: "Derive session keys with a peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(roleName)
			if err != nil {
				return err
			}

			paths := []string{identityPath, ephemeralPath, peerIdentityPath, peerEphemeralPath}
			blobs := make([][]byte, len(paths))
			defer func() { memzero.ZeroAll(blobs...) }()
			for i, p := range paths {
				if blobs[i], err = keyfile.Read(p); err != nil {
					return err
				}
			}

			keys, err := appCtx.Sessions.EstablishSession(role, blobs[0], blobs[1], blobs[2], blobs[3])
			if err != nil {
				return fmt.Errorf("handshake as %s: %w", role, err)
			}
			defer keys.Wipe()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cipher-key: %x\n", keys.CipherKey)
			fmt.Fprintf(w, "mac-key: %x\n", keys.MACKey)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&roleName, "role", "", "initiator or responder")
	f.StringVar(&identityPath, "identity", "", "our identity private key file")
	f.StringVar(&ephemeralPath, "ephemeral", "", "our ephemeral private key file")
	f.StringVar(&peerIdentityPath, "peer-identity", "", "peer identity public key file")
	f.StringVar(&peerEphemeralPath, "peer-ephemeral", "", "peer ephemeral public key file")
	for _, name := range []string{"role", "identity", "ephemeral", "peer-identity", "peer-ephemeral"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
