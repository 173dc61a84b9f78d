package smartbus

import "time"

// iso8601FromUnixSeconds converts a Unix timestamp to ISO8601 format.
func iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
