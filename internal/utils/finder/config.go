package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindConfigFile resolves configPath to an absolute path. A leading "~/" is
// expanded to the user's home directory. With mustExist, a missing file is an error.
func FindConfigFile(configPath string, mustExist bool) (string, error) {
	if rest, ok := strings.CutPrefix(configPath, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", configPath, err)
		}
		configPath = filepath.Join(home, rest)
	}

	info, err := os.Stat(configPath)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("configuration path is a directory: %s", configPath)
	case err == nil:
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		return absPath, nil
	case mustExist:
		return "", fmt.Errorf("configuration file not found: %s", configPath)
	}

	return configPath, nil
}
