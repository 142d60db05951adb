package sentinel

import "errors"

// Storage-level facts. Stores wrap these next to their domain error so the
// service layer can branch on the fact without knowing the store.
//
// - ErrNotFound: the key has no record
// - ErrAlreadyUsed: the key is taken and records are never overwritten
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
)
