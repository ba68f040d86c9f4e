package logger

import "go.uber.org/zap"

// String creates a field with a string value
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Uint64 creates a field with a uint64 value
func Uint64(key string, value uint64) zap.Field {
	return zap.Uint64(key, value)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}
