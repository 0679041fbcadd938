// Package password stretches passwords for storage and verifies them later.
//
// It enforces an optional strength policy, draws a fresh salt per password
// and records salt, iteration count and length next to the digest.
package password
