// Package lifecycle holds shared timeouts for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the initial database
// ping and the HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
