package handlers

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// maxDeadlineSeconds is the largest number of seconds representable as a time.Duration.
const maxDeadlineSeconds = uint64(math.MaxInt64 / int64(time.Second))

// fromDeadlineSeconds converts the raw deadline_seconds value to a TTL.
// Absent, unparseable and negative values yield def; values too large for
// time.Duration are clamped to the largest representable duration.
func fromDeadlineSeconds(raw *string, def time.Duration) time.Duration {
	if raw == nil {
		return def
	}
	seconds, err := strconv.ParseUint(strings.TrimPrefix(*raw, "+"), 10, 64)
	if err != nil {
		return def
	}
	if seconds > maxDeadlineSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds) * time.Second
}
