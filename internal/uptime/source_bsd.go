//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package uptime

import (
	"time"

	"golang.org/x/sys/unix"
)

const defaultSource = SourceSysctl

var nativeSources = map[string]func() Provider{
	SourceSysctl: func() Provider { return NewBootTimeProvider(sysctlBootTime) },
}

// sysctlBootTime reads kern.boottime from the kernel control table
func sysctlBootTime() (time.Time, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return time.Time{}, err
	}
	sec, nsec := tv.Unix()
	return time.Unix(sec, nsec), nil
}
