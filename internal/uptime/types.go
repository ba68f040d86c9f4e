package uptime

// Seconds is the number of whole seconds elapsed since the system last booted
type Seconds uint64

// Provider reports how long the system has been running.
//
// Implementations perform a single read-only OS query per call and never retry.
// Any failure is returned as an error matching ErrUnavailable.
type Provider interface {
	Uptime() (Seconds, error)
}
