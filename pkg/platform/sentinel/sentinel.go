package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
// These describe the presence or absence of a key, not validation failures:
//   - ErrNotFound: no record is stored under the key
//   - ErrAlreadyExists: a record is already stored under the key
//
// For input errors, use pkg/domain-errors directly.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
