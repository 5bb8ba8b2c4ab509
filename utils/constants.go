// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// GeoCachePrefix is the prefix used for reverse-geocode cache keys.
const GeoCachePrefix = "geo:"

// GeoCacheTTL is the time-to-live for cached reverse-geocode results.
const GeoCacheTTL = 24 * time.Hour

// TrackingIDPrefix is prepended to every assigned trip tracking id.
const TrackingIDPrefix = "TrP-2-3-"
