// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlotCachePrefix is the prefix used for cached slot list keys.
const SlotCachePrefix = "slots:"

// SlotCacheTTL keeps resolved slot lists fresh enough that a stale read is
// caught by the booking validator anyway.
const SlotCacheTTL = 30 * time.Second
