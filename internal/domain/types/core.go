package types

import "fmt"

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Role tells the handshake which side of the exchange the caller is on.
type Role int

const (
	// Initiator is the party that starts the handshake.
	Initiator Role = iota
	// Responder is the party answering it.
	Responder
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case Initiator:
		return "initiator"
	case Responder:
		return "responder"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == Initiator || r == Responder }

// ParseRole maps "initiator" / "responder" to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "initiator", "i":
		return Initiator, nil
	case "responder", "r":
		return Responder, nil
	default:
		return 0, fmt.Errorf("unknown role %q (want initiator or responder)", s)
	}
}
