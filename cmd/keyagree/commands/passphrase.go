package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"keyagree/internal/util/memzero"
)

// PassphraseEnvVar supplies the password non-interactively.
const PassphraseEnvVar = "KEYAGREE_PASSPHRASE"

var errPassphraseMismatch = errors.New("passphrases do not match")

func getPassphrase(prompt io.Writer, label string) ([]byte, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return []byte(env), nil
	}
	return readPassword(prompt, label)
}

func getPassphraseWithConfirm(prompt io.Writer, label string) ([]byte, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return []byte(env), nil
	}

	pass, err := readPassword(prompt, label)
	if err != nil {
		return nil, err
	}
	confirm, err := readPassword(prompt, "Confirm "+label)
	if err != nil {
		memzero.Zero(pass)
		return nil, err
	}
	defer memzero.Zero(confirm)

	if !bytes.Equal(pass, confirm) {
		memzero.Zero(pass)
		return nil, errPassphraseMismatch
	}
	return pass, nil
}

func readPassword(prompt io.Writer, label string) ([]byte, error) {
	fmt.Fprintf(prompt, "%s: ", label)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// stdin is piped; fall back to the controlling terminal.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, fmt.Errorf("cannot read passphrase without a terminal, set %s", PassphraseEnvVar)
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return nil, err
	}
	return pass, nil
}
