package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uptime/internal/startup"
	"uptime/internal/uptime"
)

// version is overridden at build time with -ldflags "-X uptime/cmd.version=..."
var version = "0.1.0"

const manPage = `
NAME
    uptime - show how long the system has been running

SYNOPSIS
    uptime [ -h | --help ] [ -V | --version ] [ -c FILE | --config FILE ]

DESCRIPTION
    Prints the length of time the system has been up.

OPTIONS
    -h
    --help
        display this help and exit

    -V
    --version
        output version information and exit

    -c FILE
    --config FILE
        read uptime source and logging settings from a YAML file
`

// NewRootCmd creates the uptime command
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "uptime",
		Short:         "Show how long the system has been running",
		Long:          `Prints the length of time the system has been up.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := startup.InitializeApplication(configPath)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			return application.Run(cmd.OutOrStdout())
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), manPage)
	})
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return rootCmd
}

// Execute runs the root command and is the only place errors become exit codes
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), diagnostic(err))
		os.Exit(1)
	}
}

// diagnostic maps an error to the single line printed on stderr
func diagnostic(err error) string {
	if errors.Is(err, uptime.ErrUnavailable) {
		return "error: could not determine system uptime"
	}
	return "error: " + err.Error()
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()
}
