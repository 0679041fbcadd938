package app

import (
	"io"

	"keyagree/internal/crypto"
	"keyagree/internal/domain"
	"keyagree/internal/protocol/channel"
	"keyagree/internal/protocol/tripledh"
	keysvc "keyagree/internal/services/keys"
	passwordsvc "keyagree/internal/services/password"
	sessionsvc "keyagree/internal/services/session"
)

// Wire bundles all services for the CLI.
type Wire struct {
	Codec     *crypto.KeyCodec
	Handshake tripledh.Handshake
	Keys      domain.KeyService
	Sessions  domain.SessionService
	Passwords domain.PasswordService

	random io.Reader
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := crypto.NewKeyCodec(cfg.Curve, cfg.Random)
	if err != nil {
		return nil, err
	}
	hs := tripledh.Handshake{
		Curve:       cfg.Curve,
		Suite:       cfg.Suite,
		ContextInfo: []byte(cfg.ContextInfo),
	}

	// High-level services
	sessionSvc, err := sessionsvc.New(codec, hs)
	if err != nil {
		return nil, err
	}
	passwordSvc := passwordsvc.New(crypto.NewStretcher(cfg.Suite.Hash, cfg.Random), passwordsvc.Params{
		SaltBytes:  cfg.SaltBytes,
		Iterations: cfg.Iterations,
		Bits:       cfg.DigestBits,
		Policy:     cfg.PasswordPolicy,
	})

	return &Wire{
		Codec:     codec,
		Handshake: hs,
		Keys:      keysvc.New(codec),
		Sessions:  sessionSvc,
		Passwords: passwordSvc,
		random:    cfg.Random,
	}, nil
}

// OpenChannel returns a message channel keyed by the output of a handshake.
// Both parties must open it with the same SessionKeys.
func (w *Wire) OpenChannel(keys domain.SessionKeys) (*channel.Channel, error) {
	return channel.New(keys, w.random)
}
