package pool

// Resetter is satisfied by all three pool types. The solver façade keeps
// a slice of Resetters per query and, on teardown, calls Reset on each
// regardless of earlier failures, joining every error it sees with
// errors.Join — mirroring the source's "capture the first exception,
// still reset every resource, rethrow after" pool-teardown contract.
type Resetter interface {
	Reset() error
	Release() error
}
