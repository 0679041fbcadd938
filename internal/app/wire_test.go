package app_test

import (
	"bytes"
	"errors"
	"testing"

	"keyagree/internal/app"
	"keyagree/internal/crypto"
	"keyagree/internal/domain"
)

func TestNewWire_Defaults(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Iterations = 1000 // keep the test fast

	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Codec.Curve() != crypto.DefaultCurve {
		t.Fatalf("codec curve = %s, want %s", w.Codec.Curve(), crypto.DefaultCurve)
	}

	idA, _, err := w.Keys.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	ephA, _, _ := w.Keys.GenerateKeyPair()
	idB, _, _ := w.Keys.GenerateKeyPair()
	ephB, _, _ := w.Keys.GenerateKeyPair()

	ak, err := w.Sessions.EstablishSession(domain.Initiator, idA.PrivateKey, ephA.PrivateKey, idB.PublicKey, ephB.PublicKey)
	if err != nil {
		t.Fatalf("EstablishSession initiator: %v", err)
	}
	bk, err := w.Sessions.EstablishSession(domain.Responder, idB.PrivateKey, ephB.PrivateKey, idA.PublicKey, ephA.PublicKey)
	if err != nil {
		t.Fatalf("EstablishSession responder: %v", err)
	}
	if !bytes.Equal(ak.CipherKey, bk.CipherKey) || !bytes.Equal(ak.MACKey, bk.MACKey) {
		t.Fatal("session keys differ")
	}

	chA, err := w.OpenChannel(ak)
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}
	defer chA.Close()
	chB, err := w.OpenChannel(bk)
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}
	defer chB.Close()

	msg, err := chA.Seal([]byte("hdr"), []byte("hello responder"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	pt, err := chB.Open([]byte("hdr"), msg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(pt) != "hello responder" {
		t.Fatalf("Open = %q", pt)
	}

	d, err := w.Passwords.HashPassword([]byte("pw"))
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if ok, _ := w.Passwords.VerifyPassword([]byte("pw"), d); !ok {
		t.Fatal("VerifyPassword failed")
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*app.Config){
		"unknown curve": func(c *app.Config) { c.Curve = "P-192" },
		"no context":    func(c *app.Config) { c.ContextInfo = "" },
		"no salt":       func(c *app.Config) { c.SaltBytes = 0 },
		"no iterations": func(c *app.Config) { c.Iterations = 0 },
		"bad suite":     func(c *app.Config) { c.Suite.CipherKeyLen = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			mutate(&cfg)
			if _, err := app.NewWire(cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	cfg := app.DefaultConfig()
	cfg.Curve = "P-192"
	if err := cfg.Validate(); !errors.Is(err, crypto.ErrAlgorithmUnavailable) {
		t.Fatalf("want ErrAlgorithmUnavailable, got %v", err)
	}
}
