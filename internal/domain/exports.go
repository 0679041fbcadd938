package domain

import (
	interfaces "keyagree/internal/domain/interfaces"
	types "keyagree/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint    = types.Fingerprint
	Role           = types.Role
	EncodedKeyPair = types.EncodedKeyPair
	SessionKeys    = types.SessionKeys
	PasswordDigest = types.PasswordDigest
)

// Role values.
const (
	Initiator = types.Initiator
	Responder = types.Responder
)

// ParseRole maps a role name to a Role.
var ParseRole = types.ParseRole

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService      = interfaces.KeyService
	SessionService  = interfaces.SessionService
	PasswordService = interfaces.PasswordService
)
