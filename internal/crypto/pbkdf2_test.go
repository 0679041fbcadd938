package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"keyagree/internal/crypto"
)

func TestStretcher_KnownVector(t *testing.T) {
	s := crypto.NewStretcher(nil, nil)
	d, err := s.DeriveDigest([]byte("password"), []byte("salt"), 1, 256)
	if err != nil {
		t.Fatalf("DeriveDigest: %v", err)
	}
	want, _ := hex.DecodeString("120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b")
	if !bytes.Equal(d.Digest, want) {
		t.Fatalf("digest = %x, want %x", d.Digest, want)
	}
	if d.Iterations != 1 || d.Bits != 256 || string(d.Salt) != "salt" {
		t.Fatalf("parameters not recorded: %+v", d)
	}
}

func TestStretcher_Deterministic(t *testing.T) {
	s := crypto.NewStretcher(nil, nil)
	salt, err := s.GenerateSalt(16)
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	a, _ := s.DeriveDigest([]byte("correct horse"), salt, 1000, 160)
	b, _ := s.DeriveDigest([]byte("correct horse"), salt, 1000, 160)
	if !bytes.Equal(a.Digest, b.Digest) {
		t.Fatal("same inputs gave different digests")
	}
	if len(a.Digest) != 20 {
		t.Fatalf("want 20 bytes for 160 bits, got %d", len(a.Digest))
	}

	c, _ := s.DeriveDigest([]byte("correct horse"), salt, 1001, 160)
	if bytes.Equal(a.Digest, c.Digest) {
		t.Fatal("iteration count did not change the digest")
	}

	odd, _ := s.DeriveDigest([]byte("correct horse"), salt, 1000, 12)
	if len(odd.Digest) != 2 {
		t.Fatalf("want 2 bytes for 12 bits, got %d", len(odd.Digest))
	}
}

func TestStretcher_Salt(t *testing.T) {
	s := crypto.NewStretcher(nil, bytes.NewReader(bytes.Repeat([]byte{0xaa}, 8)))
	salt, err := s.GenerateSalt(8)
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if !bytes.Equal(salt, bytes.Repeat([]byte{0xaa}, 8)) {
		t.Fatalf("salt not read from the configured source: %x", salt)
	}
	// Source exhausted.
	if _, err := s.GenerateSalt(1); !errors.Is(err, crypto.ErrRandomSource) {
		t.Fatalf("exhausted random source: want ErrRandomSource, got %v", err)
	}
}

func TestStretcher_InvalidParameters(t *testing.T) {
	s := crypto.NewStretcher(nil, nil)
	salt := []byte("0123456789abcdef")

	for _, size := range []int{0, -1} {
		if _, err := s.GenerateSalt(size); !errors.Is(err, crypto.ErrInvalidParameter) {
			t.Fatalf("GenerateSalt(%d): want ErrInvalidParameter, got %v", size, err)
		}
	}

	cases := []struct {
		name       string
		salt       []byte
		iterations int
		bits       int
	}{
		{"zero iterations", salt, 0, 256},
		{"negative iterations", salt, -5, 256},
		{"zero bits", salt, 10, 0},
		{"empty salt", nil, 10, 256},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := s.DeriveDigest([]byte("pw"), tc.salt, tc.iterations, tc.bits)
			if !errors.Is(err, crypto.ErrInvalidParameter) {
				t.Fatalf("want ErrInvalidParameter, got %v", err)
			}
			if d.Digest != nil {
				t.Fatal("failed call returned a digest")
			}
		})
	}
}

func TestStretcher_Verify(t *testing.T) {
	s := crypto.NewStretcher(nil, nil)
	salt, _ := s.GenerateSalt(16)
	d, err := s.DeriveDigest([]byte("hunter2"), salt, 500, 256)
	if err != nil {
		t.Fatalf("DeriveDigest: %v", err)
	}

	ok, err := s.VerifyDigest([]byte("hunter2"), d)
	if err != nil || !ok {
		t.Fatalf("VerifyDigest(correct) = %v, %v", ok, err)
	}
	ok, err = s.VerifyDigest([]byte("hunter3"), d)
	if err != nil || ok {
		t.Fatalf("VerifyDigest(wrong) = %v, %v", ok, err)
	}
}
