//go:build linux

package uptime

import "golang.org/x/sys/unix"

const defaultSource = SourceProcFS

var nativeSources = map[string]func() Provider{
	SourceClock: func() Provider { return NewClockProvider(bootClockSeconds) },
}

// bootClockSeconds reads CLOCK_BOOTTIME, which unlike CLOCK_MONOTONIC keeps
// counting while the system is suspended
func bootClockSeconds() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		return 0, err
	}
	sec, _ := ts.Unix()
	return sec, nil
}
