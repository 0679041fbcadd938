// Package keys creates encoded key pairs and fingerprints public keys.
//
// Keys leave this package as PKCS#8 / X.509 SPKI DER; nothing is persisted
// here.
package keys
