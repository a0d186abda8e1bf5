// Package lifecycle holds shared lifecycle constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks that talk to remote backends.
const DefaultTimeout = 10 * time.Second
