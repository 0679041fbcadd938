package session_test

import (
	"bytes"
	"errors"
	"testing"

	"keyagree/internal/crypto"
	"keyagree/internal/domain"
	"keyagree/internal/protocol/tripledh"
	"keyagree/internal/services/session"
)

func newService(t *testing.T) (*session.Service, *crypto.KeyCodec) {
	t.Helper()
	codec, err := crypto.NewKeyCodec(crypto.CurveP256, nil)
	if err != nil {
		t.Fatalf("NewKeyCodec: %v", err)
	}
	svc, err := session.New(codec, tripledh.Handshake{
		Curve:       crypto.CurveP256,
		Suite:       crypto.ChaCha20HMACSHA256,
		ContextInfo: []byte("keyagree-3dhe-v1"),
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return svc, codec
}

func encodedPair(t *testing.T, codec *crypto.KeyCodec) domain.EncodedKeyPair {
	t.Helper()
	kp, err := codec.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	enc, err := codec.EncodeKeyPair(kp)
	if err != nil {
		t.Fatalf("EncodeKeyPair: %v", err)
	}
	return enc
}

func TestEstablishSession_BothSidesAgree(t *testing.T) {
	svc, codec := newService(t)
	idA, ephA := encodedPair(t, codec), encodedPair(t, codec)
	idB, ephB := encodedPair(t, codec), encodedPair(t, codec)

	// Public keys travel as base64 text, private keys stay DER.
	ak, err := svc.EstablishSession(domain.Initiator,
		idA.PrivateKey, ephA.PrivateKey,
		[]byte(crypto.B64(idB.PublicKey)), []byte(crypto.B64(ephB.PublicKey)))
	if err != nil {
		t.Fatalf("EstablishSession initiator: %v", err)
	}
	bk, err := svc.EstablishSession(domain.Responder,
		idB.PrivateKey, ephB.PrivateKey,
		idA.PublicKey, ephA.PublicKey)
	if err != nil {
		t.Fatalf("EstablishSession responder: %v", err)
	}
	if !bytes.Equal(ak.CipherKey, bk.CipherKey) || !bytes.Equal(ak.MACKey, bk.MACKey) {
		t.Fatal("session keys differ")
	}
}

func TestEstablishSession_BadInput(t *testing.T) {
	svc, codec := newService(t)
	id, eph := encodedPair(t, codec), encodedPair(t, codec)

	_, err := svc.EstablishSession(domain.Initiator, id.PrivateKey, eph.PrivateKey, []byte("garbage!"), eph.PublicKey)
	if !errors.Is(err, crypto.ErrKeyFormat) {
		t.Fatalf("want ErrKeyFormat, got %v", err)
	}

	p384, _ := crypto.NewKeyCodec(crypto.CurveP384, nil)
	foreign := encodedPair(t, p384)
	_, err = svc.EstablishSession(domain.Initiator, id.PrivateKey, eph.PrivateKey, foreign.PublicKey, eph.PublicKey)
	if !errors.Is(err, crypto.ErrUnsupportedCurve) {
		t.Fatalf("want ErrUnsupportedCurve, got %v", err)
	}
}

func TestNew_CurveMismatch(t *testing.T) {
	codec, _ := crypto.NewKeyCodec(crypto.CurveP256, nil)
	_, err := session.New(codec, tripledh.Handshake{Curve: crypto.CurveX25519})
	if !errors.Is(err, crypto.ErrKeyMismatch) {
		t.Fatalf("want ErrKeyMismatch, got %v", err)
	}
}
