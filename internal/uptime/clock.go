package uptime

import "fmt"

// ClockProvider reads the seconds component of a clock whose epoch is boot
type ClockProvider struct {
	clock func() (int64, error)
}

// NewClockProvider creates a provider around a boot-anchored clock reader
func NewClockProvider(clock func() (int64, error)) *ClockProvider {
	return &ClockProvider{clock: clock}
}

// Uptime returns the clock's seconds directly, no subtraction needed
func (p *ClockProvider) Uptime() (Seconds, error) {
	sec, err := p.clock()
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to read clock: %w", err))
	}
	if sec < 0 {
		return 0, unavailable(fmt.Errorf("clock reported negative seconds: %d", sec))
	}
	return Seconds(sec), nil
}
