package types

// PasswordDigest is a stretched password together with the parameters needed
// to recompute it. Digests are only comparable when Salt, Iterations and Bits
// all match.
type PasswordDigest struct {
	Digest     []byte `json:"digest"`
	Salt       []byte `json:"salt"`
	Iterations int    `json:"iterations"`
	Bits       int    `json:"bits"`
}
