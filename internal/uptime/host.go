package uptime

import (
	"fmt"

	"github.com/shirou/gopsutil/host"
)

// HostProvider asks gopsutil for the uptime. It covers platforms that have
// no native variant in this package.
type HostProvider struct {
	uptime func() (uint64, error)
}

// NewHostProvider creates a provider backed by gopsutil's host package
func NewHostProvider() *HostProvider {
	return &HostProvider{uptime: host.Uptime}
}

// Uptime returns the uptime reported by gopsutil
func (p *HostProvider) Uptime() (Seconds, error) {
	seconds, err := p.uptime()
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to get uptime: %w", err))
	}
	return Seconds(seconds), nil
}
