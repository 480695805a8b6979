package application

import (
	"os"
	"strings"
)

// FallbackTimezone is used when no zone is given and none can be detected.
const FallbackTimezone = "UTC"

// InitConfig is the full configuration consumed by Initialize. It is passed
// by value; nothing reads settings from package state, so tests can supply
// alternate roots and times without interference.
type InitConfig struct {
	Root         string
	DryRun       bool
	SkipSchedule bool
	Timezone     string
	DailyTime    string
	WeeklyTime   string
}

// ResolveTimezone picks the explicit zone when set, else the detected
// system zone, else UTC.
func ResolveTimezone(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	// On most Unix systems /etc/localtime is a symlink into the zoneinfo
	// database; the suffix after "zoneinfo/" is the IANA zone name.
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			return link[i+len("zoneinfo/"):]
		}
	}
	return FallbackTimezone
}
