package kernel

import "time"

// Now returns the current UTC time truncated to microseconds, the precision
// of a PostgreSQL timestamp, so an entity built in memory compares equal to
// the same entity read back from storage.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
