package uptime

import (
	"fmt"
	"time"
)

// BootTimeProvider derives uptime from the kernel boot timestamp and the
// current wall clock. Both reads are separate; sub-second drift is ignored.
type BootTimeProvider struct {
	bootTime func() (time.Time, error)
	now      func() time.Time
}

// NewBootTimeProvider creates a provider around a boot timestamp reader
func NewBootTimeProvider(bootTime func() (time.Time, error)) *BootTimeProvider {
	return &BootTimeProvider{
		bootTime: bootTime,
		now:      time.Now,
	}
}

// Uptime returns whole seconds between the boot timestamp and now
func (p *BootTimeProvider) Uptime() (Seconds, error) {
	boot, err := p.bootTime()
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to read boot time: %w", err))
	}

	bootSec := boot.Unix()
	nowSec := p.now().Unix()
	if bootSec > nowSec {
		// Wall clock stepped behind the recorded boot time
		return 0, unavailable(fmt.Errorf("boot time %d is after current time %d", bootSec, nowSec))
	}

	return Seconds(nowSec - bootSec), nil
}
