package uptime

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultProcPath is the pseudo-file the Linux kernel exposes uptime through
const DefaultProcPath = "/proc/uptime"

// ProcFileProvider reads uptime from a text pseudo-file whose first
// whitespace-delimited token is the uptime in (fractional) seconds.
type ProcFileProvider struct {
	Path     string
	readFile func(name string) ([]byte, error)
}

// NewProcFileProvider creates a provider reading the given path
func NewProcFileProvider(path string) *ProcFileProvider {
	if path == "" {
		path = DefaultProcPath
	}
	return &ProcFileProvider{
		Path:     path,
		readFile: os.ReadFile,
	}
}

// Uptime reads and parses the pseudo-file
func (p *ProcFileProvider) Uptime() (Seconds, error) {
	data, err := p.readFile(p.Path)
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to read %s: %w", p.Path, err))
	}

	seconds, err := parseProcUptime(data)
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to parse %s: %w", p.Path, err))
	}
	return seconds, nil
}

// parseProcUptime parses content such as "350735.47 234388.90" and truncates
// the first field to whole seconds
func parseProcUptime(data []byte) (Seconds, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, errors.New("no uptime value")
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || value < 0 || value >= float64(math.MaxUint64) {
		return 0, fmt.Errorf("uptime value out of range: %s", fields[0])
	}

	return Seconds(value), nil
}
