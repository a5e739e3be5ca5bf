package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Caches and outbound clients return
// these (optionally wrapped); the check-in service turns them into coded
// domain errors.
//
//   - ErrNotFound: no cached entry for the key
//   - ErrUnavailable: a remote dependency could not be reached or refused the call
//   - ErrInvalidResponse: a remote dependency answered with something unparseable
var (
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrInvalidResponse = errors.New("invalid response")
)
