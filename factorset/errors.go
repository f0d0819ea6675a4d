package factorset

import (
	"errors"
	"fmt"
)

// Sentinel errors for document loading and building.
var (
	// ErrDuplicateName indicates two entries with the same name.
	ErrDuplicateName = errors.New("factorset: duplicate name")

	// ErrUnknownReference indicates an arg naming nothing declared before it.
	ErrUnknownReference = errors.New("factorset: unknown reference")

	// ErrInvalidEntry indicates an entry whose fields do not describe exactly one term.
	ErrInvalidEntry = errors.New("factorset: invalid entry")
)

func factorsetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
