package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// rootOptions holds the command-line flags that override the config file
type rootOptions struct {
	configPath string
	backend    string
	logLevel   string
	logFormat  string
	logFile    string
	notify     bool
}

// NewRootCommand creates the vkbd command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vkbd [flags] <operation> [<operation> ...]",
		Short: "Type text and key chords through a virtual keyboard",
		Long: `vkbd injects keyboard input into the running session through a virtual
keyboard device (Wayland zwp_virtual_keyboard_v1 or Linux uinput).

` + usageText,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	// operation tokens may start with a dash, e.g. "type -v"
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/vkbd/config.yaml)")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "Device backend: wayland, uinput or print")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Also write logs to this file")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "Show a desktop notification on failure")

	return cmd
}

// overrideWithFlags applies flags the user actually set over the config file
func overrideWithFlags(cmd *cobra.Command, opts *rootOptions, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		config.Device.Backend = opts.backend
	}
	if flags.Changed("log-level") {
		config.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		config.Logging.Format = opts.logFormat
	}
	if flags.Changed("log-file") {
		config.Logging.File = opts.logFile
	}
	if flags.Changed("notify") {
		config.Notifications.Enabled = opts.notify
	}
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) == 0 {
		printUsage(cmd.ErrOrStderr())
		return errors.New("no operation given")
	}
	// help alone needs no device
	if args[0] == "help" {
		printUsage(cmd.OutOrStdout())
		return nil
	}

	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	overrideWithFlags(cmd, opts, config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logManager, err := NewLogManager(config, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logManager.Close()

	notificationManager := NewNotificationManager(config, logManager)

	if err := execute(cmd, config, logManager, args); err != nil {
		// main prints the error itself; keep a record for the log file
		logManager.LogDebug("Run failed", "error", err.Error())
		notificationManager.NotifyError(err.Error())
		return err
	}
	return nil
}

func execute(cmd *cobra.Command, config *Config, logManager *LogManager, args []string) error {
	if config.Advanced.SingleInstance {
		instance := NewSingleInstance(AppName, "")
		if err := instance.TryLock(); err != nil {
			return err
		}
		defer instance.Release()
	}

	device, err := OpenDevice(cmd.Context(), config, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logManager.LogInfo("Virtual keyboard ready", "backend", config.Device.Backend)
	defer func() {
		if err := device.Close(); err != nil {
			logManager.LogError("Failed to close virtual keyboard", err)
		}
	}()

	dispatcher := NewDispatcher(NewSequencer(device), config, logManager, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := dispatcher.Run(args); err != nil && !errors.Is(err, ErrHelp) {
		return err
	}
	return nil
}
