package startup

import (
	"uptime/internal/app"
	"uptime/internal/pkg/config"
	"uptime/internal/pkg/logger"
	"uptime/internal/utils/finder"
)

// InitializeApplication initializes the application with the given config
// path. An empty path runs on built-in defaults.
func InitializeApplication(configPath string) (*app.Application, error) {
	if configPath != "" {
		foundConfigPath, err := finder.FindConfigFile(configPath, true)
		if err != nil {
			return nil, err
		}
		configPath = foundConfigPath
	}

	application := app.New(configPath)
	if err := application.Initialize(); err != nil {
		return nil, err
	}

	return application, nil
}

// SetupDefaultLogger initializes a default logger for early startup
func SetupDefaultLogger() {
	if err := logger.Init(config.GetDefaultConfig()); err != nil {
		// Can't use logger yet
		panic("Error initializing logger: " + err.Error())
	}
}
