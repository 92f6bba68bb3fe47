package awsprovider

import "fmt"

// RegionListingError is the single error type surfaced by the region listing
// operations. It wraps the underlying SDK failure from the enumeration call.
// Per-region location lookups never produce it; those are best-effort.
type RegionListingError struct {
	Op  string
	Err error
}

func (e *RegionListingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("region listing failed during %s", e.Op)
	}
	return fmt.Sprintf("region listing failed during %s: %v", e.Op, e.Err)
}

func (e *RegionListingError) Unwrap() error {
	return e.Err
}

func newRegionListingError(op string, err error) *RegionListingError {
	return &RegionListingError{Op: op, Err: err}
}
