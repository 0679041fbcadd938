// Package keyfile reads and writes single key blobs as base64 text files.
//
// Writes go through a temp file and an atomic rename; private key files are
// created with mode 0600.
package keyfile
