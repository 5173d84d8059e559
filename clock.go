package ticker

import (
	"os"
	"time"
)

// TimestampFormat is the format used to display and parse trade timestamps.
const TimestampFormat = "02/01/2006 15:04:05"

// Now returns the current time.
//
// Valuation functions never call it: they take the reference time as an
// argument, and callers sample Now once per external query at the boundary.
// The TICKER_TESTING_NOW environment variable (format "2006-01-02 15:04:05")
// overrides the wall clock so documentation examples and tests are stable.
func Now() time.Time {
	if v := os.Getenv("TICKER_TESTING_NOW"); v != "" {
		t, err := time.Parse("2006-01-02 15:04:05", v)
		if err == nil {
			return t
		}
	}
	return time.Now()
}
