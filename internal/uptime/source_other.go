//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package uptime

const defaultSource = SourceHost

var nativeSources = map[string]func() Provider{}
