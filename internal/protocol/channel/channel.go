package channel

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"

	"keyagree/internal/domain"
	"keyagree/internal/util/memzero"
)

const (
	nonceSize = chacha20.NonceSize
	tagSize   = sha256.Size

	// minMACKeySize is the shortest MAC key accepted.
	minMACKeySize = 16
)

var (
	ErrMessageTooShort = errors.New("channel: message too short")
	ErrAuthentication  = errors.New("channel: message authentication failed")
	ErrClosed          = errors.New("channel: closed")
)

// Channel seals and opens messages for one session.
type Channel struct {
	cipherKey *memzero.Secret
	macKey    *memzero.Secret
	random    io.Reader
}

// New copies keys into a Channel. A nil random uses crypto/rand.
// The caller may wipe keys afterwards.
func New(keys domain.SessionKeys, random io.Reader) (*Channel, error) {
	if len(keys.CipherKey) != chacha20.KeySize {
		return nil, fmt.Errorf("channel: cipher key must be %d bytes, got %d", chacha20.KeySize, len(keys.CipherKey))
	}
	if len(keys.MACKey) < minMACKeySize {
		return nil, fmt.Errorf("channel: mac key must be at least %d bytes, got %d", minMACKeySize, len(keys.MACKey))
	}
	if random == nil {
		random = rand.Reader
	}
	return &Channel{
		cipherKey: memzero.NewSecret(append([]byte(nil), keys.CipherKey...)),
		macKey:    memzero.NewSecret(append([]byte(nil), keys.MACKey...)),
		random:    random,
	}, nil
}

// Seal encrypts and authenticates plaintext, binding ad.
func (c *Channel) Seal(ad, plaintext []byte) ([]byte, error) {
	if c.cipherKey.Len() == 0 {
		return nil, ErrClosed
	}
	out := make([]byte, nonceSize+len(plaintext), nonceSize+len(plaintext)+tagSize)
	nonce := out[:nonceSize]
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("channel: read nonce: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(c.cipherKey.Bytes(), nonce)
	if err != nil {
		return nil, err
	}
	stream.XORKeyStream(out[nonceSize:], plaintext)

	return append(out, c.tag(nonce, ad, out[nonceSize:])...), nil
}

// Open verifies and decrypts a message produced by Seal with the same keys and ad.
func (c *Channel) Open(ad, msg []byte) ([]byte, error) {
	if c.cipherKey.Len() == 0 {
		return nil, ErrClosed
	}
	if len(msg) < nonceSize+tagSize {
		return nil, ErrMessageTooShort
	}
	nonce := msg[:nonceSize]
	ct := msg[nonceSize : len(msg)-tagSize]
	tag := msg[len(msg)-tagSize:]

	if !hmac.Equal(tag, c.tag(nonce, ad, ct)) {
		return nil, ErrAuthentication
	}

	stream, err := chacha20.NewUnauthenticatedCipher(c.cipherKey.Bytes(), nonce)
	if err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	stream.XORKeyStream(pt, ct)
	return pt, nil
}

// Close wipes the channel keys. Later Seal and Open calls fail with ErrClosed.
func (c *Channel) Close() {
	c.cipherKey.Wipe()
	c.macKey.Wipe()
}

func (c *Channel) tag(nonce, ad, ct []byte) []byte {
	var adLen [8]byte
	binary.BigEndian.PutUint64(adLen[:], uint64(len(ad)))

	m := hmac.New(sha256.New, c.macKey.Bytes())
	m.Write(nonce)
	m.Write(adLen[:])
	m.Write(ad)
	m.Write(ct)
	return m.Sum(nil)
}
