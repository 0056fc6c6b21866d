package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Seed stores return these
// (optionally wrapped) so handlers can translate them into domain errors
// without knowing where the data lives.
//
// - ErrNotFound: no record exists for the key
var (
	ErrNotFound = errors.New("not found")
)
