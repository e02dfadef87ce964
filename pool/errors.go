package pool

import "errors"

// ErrInvalidIndex is returned by Get/Free when the supplied index was
// never handed out by this pool generation (post-Release, or out of
// range).
var ErrInvalidIndex = errors.New("pool: invalid index")

// ErrZeroAlloc is returned by Heterogeneous.Alloc when asked for a
// zero-or-negative element count.
var ErrZeroAlloc = errors.New("pool: allocation size must be positive")
