package app

import (
	"net/url"
	"strings"

	"github.com/lib/pq"
)

// normalizeDBURL sets lib/pq binary_parameters=yes on URL-style DSNs when
// enabled, leaving any explicit setting alone.
func normalizeDBURL(raw string, binaryParameters bool) string {
	u, err := url.Parse(raw)
	if !binaryParameters || err != nil || u.Scheme == "" {
		return raw
	}
	q := u.Query()
	if q.Has("binary_parameters") {
		return raw
	}
	q.Set("binary_parameters", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// dbNameFromURL extracts dbname from either connection string form lib/pq
// accepts. It returns "" when the name cannot be determined.
func dbNameFromURL(raw string) string {
	dsn := strings.TrimSpace(raw)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		converted, err := pq.ParseURL(dsn)
		if err != nil {
			return ""
		}
		dsn = converted
	}
	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `'"`)
		}
	}
	return ""
}
