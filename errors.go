package bktarray

import "github.com/cockroachdb/errors"

// ErrOutOfMemory is returned (wrapped) when the arena cannot provide a
// bucket. Test for it with errors.Is.
var ErrOutOfMemory = errors.New("bktarray: arena out of memory")
