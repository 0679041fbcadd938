package keyfile

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"keyagree/internal/util/memzero"
)

const (
	// PrivateMode is used for files holding private keys.
	PrivateMode os.FileMode = 0o600
	// PublicMode is used for files holding public keys.
	PublicMode os.FileMode = 0o644
)

// Write stores der base64-encoded at path with mode.
func Write(path string, der []byte, mode os.FileMode) error {
	text := make([]byte, base64.StdEncoding.EncodedLen(len(der))+1)
	base64.StdEncoding.Encode(text, der)
	text[len(text)-1] = '\n'
	defer memzero.Zero(text)
	return writeFile(path, text, mode)
}

// WriteRecord stores b verbatim at path with mode, using the same atomic
// replace as Write. It is used for records that are not key blobs, such as
// password digests.
func WriteRecord(path string, b []byte, mode os.FileMode) error {
	if err := writeFile(path, b, mode); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Read returns the raw contents of the key file at path. The codec accepts
// base64, PEM and DER, so no decoding happens here.
func Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("read key file: %s is empty", path)
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
