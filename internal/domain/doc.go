// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (key material, session keys, digests) and contracts
// (service interfaces) only.
package domain
