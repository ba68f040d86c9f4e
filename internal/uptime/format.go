package uptime

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	daysPerYear      = 365
)

// split breaks total into its day, hour, minute and second components.
// Days wrap at 365.
func split(total Seconds) (days, hours, minutes, seconds uint64) {
	t := uint64(total)
	seconds = t % secondsPerMinute
	minutes = (t / secondsPerMinute) % 60
	hours = (t / secondsPerHour) % 24
	days = (t / secondsPerDay) % daysPerYear
	return days, hours, minutes, seconds
}

// FormatUptime formats uptime in seconds to a compact human-readable string.
// Leading zero units are dropped: "59s", "1m 0s", "1h 1m 1s", "1d 1h 1m 1s".
func FormatUptime(total Seconds) string {
	days, hours, minutes, seconds := split(total)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
