package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"keyagree/internal/crypto"
)

func TestSharedSecret_Symmetric(t *testing.T) {
	for _, c := range crypto.Curves() {
		t.Run(string(c), func(t *testing.T) {
			codec := newCodec(t, c)
			alice, err := codec.GenerateKeyPair()
			if err != nil {
				t.Fatalf("GenerateKeyPair: %v", err)
			}
			bob, err := codec.GenerateKeyPair()
			if err != nil {
				t.Fatalf("GenerateKeyPair: %v", err)
			}

			ab, err := crypto.SharedSecret(alice.Private, bob.Public)
			if err != nil {
				t.Fatalf("SharedSecret alice: %v", err)
			}
			ba, err := crypto.SharedSecret(bob.Private, alice.Public)
			if err != nil {
				t.Fatalf("SharedSecret bob: %v", err)
			}
			if !bytes.Equal(ab, ba) {
				t.Fatal("shared secrets do not match")
			}

			again, _ := crypto.SharedSecret(alice.Private, bob.Public)
			if !bytes.Equal(ab, again) {
				t.Fatal("ECDH is not deterministic")
			}
		})
	}
}

func TestSharedSecret_CurveMismatch(t *testing.T) {
	p256, _ := newCodec(t, crypto.CurveP256).GenerateKeyPair()
	p384, _ := newCodec(t, crypto.CurveP384).GenerateKeyPair()

	if _, err := crypto.SharedSecret(p256.Private, p384.Public); !errors.Is(err, crypto.ErrKeyMismatch) {
		t.Fatalf("want ErrKeyMismatch, got %v", err)
	}
}

func TestSharedSecret_InvalidKeys(t *testing.T) {
	kp, _ := newCodec(t, crypto.CurveP256).GenerateKeyPair()
	if _, err := crypto.SharedSecret(nil, kp.Public); !errors.Is(err, crypto.ErrInvalidKey) {
		t.Fatalf("nil private: want ErrInvalidKey, got %v", err)
	}
	if _, err := crypto.SharedSecret(kp.Private, nil); !errors.Is(err, crypto.ErrInvalidKey) {
		t.Fatalf("nil public: want ErrInvalidKey, got %v", err)
	}
}

func TestSharedSecret_LowOrderX25519(t *testing.T) {
	codec := newCodec(t, crypto.CurveX25519)
	kp, _ := codec.GenerateKeyPair()

	ec, _ := crypto.CurveX25519.ECDH()
	// The identity point yields an all-zero output, which the provider rejects.
	zero, err := ec.NewPublicKey(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewPublicKey: %v", err)
	}
	if _, err := crypto.SharedSecret(kp.Private, zero); !errors.Is(err, crypto.ErrInvalidKey) {
		t.Fatalf("want ErrInvalidKey, got %v", err)
	}
}

func BenchmarkSharedSecretP256(b *testing.B) {
	codec := newCodec(b, crypto.CurveP256)
	alice, _ := codec.GenerateKeyPair()
	bob, _ := codec.GenerateKeyPair()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crypto.SharedSecret(alice.Private, bob.Public)
	}
}
