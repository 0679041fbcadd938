package types

// EncodedKeyPair is a key pair in its binary wire form: the private key as
// PKCS#8 DER and the public key as X.509 SubjectPublicKeyInfo DER.
//
// PrivateKey is secret; callers should wipe it once it has been parsed or
// written out.
type EncodedKeyPair struct {
	PrivateKey []byte `json:"private_key"`
	PublicKey  []byte `json:"public_key"`
}
