package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keyagree/internal/app"
	"keyagree/internal/domain"
	"keyagree/internal/keyfile"
	"keyagree/internal/util/memzero"
)

var errPasswordMismatch = errors.New("password does not match digest")

func passwordCmd(defaults app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Stretch and verify passwords with PBKDF2",
	}

	f := cmd.PersistentFlags()
	f.IntVar(&saltBytes, "salt-bytes", defaults.SaltBytes, "salt size for new digests")
	f.IntVar(&iterations, "iterations", defaults.Iterations, "PBKDF2 iteration count for new digests")
	f.IntVar(&digestBits, "bits", defaults.DigestBits, "digest length in bits")
	f.BoolVar(&policy, "strict", defaults.PasswordPolicy, "reject weak passwords")

	cmd.AddCommand(passwordHashCmd(), passwordVerifyCmd())
	return cmd
}

func passwordHashCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password and print the digest as JSON",
		Long: "Prompt for a password (or read " + PassphraseEnvVar + ") and print a JSON\n" +
			"record holding the digest, salt and parameters needed to verify it later.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := getPassphraseWithConfirm(cmd.ErrOrStderr(), "Password")
			if err != nil {
				return err
			}
			defer memzero.Zero(pass)

			digest, err := appCtx.Passwords.HashPassword(pass)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(digest, "", "  ")
			if err != nil {
				return err
			}
			b = append(b, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return keyfile.WriteRecord(out, b, keyfile.PrivateMode)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the digest record to this file")
	return cmd
}

func passwordVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <digest-file>",
		Short: "Check a password against a stored digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var digest domain.PasswordDigest
			if err := json.Unmarshal(raw, &digest); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			pass, err := getPassphrase(cmd.ErrOrStderr(), "Password")
			if err != nil {
				return err
			}
			defer memzero.Zero(pass)

			ok, err := appCtx.Passwords.VerifyPassword(pass, digest)
			if err != nil {
				return err
			}
			if !ok {
				return errPasswordMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password OK")
			return nil
		},
	}
}
