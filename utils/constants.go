// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking-session cache keys.
const SessionCachePrefix = "quote:"

// SessionCacheTTL is the time-to-live for booking quote sessions.
const SessionCacheTTL = 10 * time.Minute
