package utils

import (
	"fmt"
)

// Wraps err with a formatted details message. The result matches err with [errors.Is]
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}
