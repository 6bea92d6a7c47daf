package constants

import (
	"fmt"
	"time"
)

// Redis key layout for the storefront
// Pattern: boxoffice:{module}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_SELECTION_DEFAULT = 15 * time.Minute // seat selection session, refreshed on every write
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "boxoffice"

	CACHE_KEY_SELECTION = CACHE_PREFIX + ":selections:" // + session-id
	CACHE_KEY_RATELIMIT = CACHE_PREFIX + ":ratelimit:"  // + client-ip:limit-type
)

// ================== KEY BUILDERS ==================

func GetSelectionKey(sessionID string) string {
	return CACHE_KEY_SELECTION + sessionID
}

func GetRateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_RATELIMIT, clientIP, limitType)
}
