// File: utils/constants.go
package utils

import "time"

// PageCachePrefix is the prefix used for Redis page cache keys.
const PageCachePrefix = "page:"

// DefaultPageCacheTTL applies when no positive TTL is configured.
const DefaultPageCacheTTL = 300 * time.Second
