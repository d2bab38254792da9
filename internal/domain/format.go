package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationRe = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration converts an ISO 8601 duration (e.g. PT55M5S) to clock form
// (e.g. 55:05). Input that does not look like a PT duration is returned verbatim.
func FormatDuration(iso string) string {
	if iso == "" {
		return ""
	}
	m := durationRe.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return iso
	}
	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours))
	}
	parts = append(parts, fmt.Sprintf("%02d", minutes), fmt.Sprintf("%02d", seconds))
	return strings.Join(parts, ":")
}

// FormatDate converts an RFC 3339 timestamp to YYYY-MM-DD.
// Unparseable input is returned verbatim.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
