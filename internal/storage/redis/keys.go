package redis

import (
	"fmt"

	"github.com/mcoot/cardtally-go/internal/model"
)

// Key prefix for all tally data
const keyPrefix = "cardtally"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the sorted set ordering the
// session collection (scored by creation time, read newest-first)
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// preferenceKey returns the Redis key for a boolean preference flag
func preferenceKey(key string) string {
	return fmt.Sprintf("%s:pref:%s", keyPrefix, key)
}

// appStateKey returns the Redis key for the app selection state
func appStateKey() string {
	return fmt.Sprintf("%s:appstate", keyPrefix)
}
