package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"keyagree/internal/domain"
)

// Fingerprint returns a short fingerprint of an encoded public key.
//
// It hashes the SPKI DER with SHA-256, keeps 10 bytes and groups the hex in
// fours (xxxx-xxxx-...).
func Fingerprint(spki []byte) domain.Fingerprint {
	sum := sha256.Sum256(spki)
	h := hex.EncodeToString(sum[:10])
	groups := make([]string, 0, len(h)/4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return domain.Fingerprint(strings.Join(groups, "-"))
}
