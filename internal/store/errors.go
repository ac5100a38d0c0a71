package store

import "errors"

// ErrNotFound indicates the requested row does not exist. Callers that
// treat absence as a normal condition (profile ensure, latest lookups)
// receive nil results instead.
var ErrNotFound = errors.New("not found")

// ErrNotOwned indicates the target row does not exist or belongs to a
// different profile. Mutations fail with this error before touching the
// row, so the two cases are deliberately indistinguishable.
var ErrNotOwned = errors.New("not found or not owned by this profile")
