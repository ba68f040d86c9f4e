package uptime

import (
	"fmt"
	"runtime"
)

// Names accepted by NewProvider
const (
	SourceAuto   = "auto"
	SourceProcFS = "procfs"
	SourceSysctl = "sysctl"
	SourceClock  = "clock"
	SourceHost   = "host"
)

// KnownSources lists every source name, whether or not this platform supports it
var KnownSources = []string{SourceAuto, SourceProcFS, SourceSysctl, SourceClock, SourceHost}

// DefaultSource returns the source "auto" resolves to on this platform
func DefaultSource() string {
	return defaultSource
}

// ResolveSource maps an empty name or "auto" to the platform default
func ResolveSource(source string) string {
	if source == "" || source == SourceAuto {
		return defaultSource
	}
	return source
}

// NewProvider builds the provider for a source name. procPath is only used by
// the procfs source; empty means DefaultProcPath.
func NewProvider(source, procPath string) (Provider, error) {
	source = ResolveSource(source)

	switch source {
	case SourceProcFS:
		return NewProcFileProvider(procPath), nil
	case SourceHost:
		return NewHostProvider(), nil
	}

	if build, ok := nativeSources[source]; ok {
		return build(), nil
	}
	return nil, fmt.Errorf("%w: %q on %s", ErrUnsupportedSource, source, runtime.GOOS)
}
