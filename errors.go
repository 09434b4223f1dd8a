package pitfalls

import "github.com/zeebo/errs"

// Error classes shared across the demonstrations.
var (
	// ValidationError marks input rejected by a domain rule before any work
	// was done: an age below the minimum, a zero divider, a duplicate name.
	ValidationError = errs.Class("validation")

	// ResourceNotFoundError marks a missing backing resource, such as a
	// file that does not exist.
	ResourceNotFoundError = errs.Class("resource not found")
)
