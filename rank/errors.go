package rank

import "errors"

// ErrUnknownMethod indicates a tie-break method outside Methods().
var ErrUnknownMethod = errors.New("rank: unknown rank method")
