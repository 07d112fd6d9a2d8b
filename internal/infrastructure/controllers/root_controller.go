package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// RootController is the top-level "hotaisle" command. It loads the settings
// into the session before any subcommand runs.
type RootController struct {
	session    *entities.Session
	repository repositories.SettingsRepository
	buildInfo  *entities.BuildInfo
	printers   *PrinterRegistry
}

// NewRootController creates a new RootController.
func NewRootController(
	session *entities.Session,
	repository repositories.SettingsRepository,
	buildInfo *entities.BuildInfo,
	printers *PrinterRegistry,
) *RootController {
	return &RootController{
		session:    session,
		repository: repository,
		buildInfo:  buildInfo,
		printers:   printers,
	}
}

// GetBind returns the Cobra command metadata for the root command.
func (it *RootController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   entities.BinaryName,
		Short: "Command line interface for the Hot Aisle API",
		Long: `Manage Hot Aisle teams, virtual machines and bare metal servers
from the command line.

Settings are read from ~/.hotaisle/config.yaml (override with --config-file
or HOTAISLE_CONFIG_FILE). Run 'hotaisle config set token <token>' first.`,
	}
}

// Version is what --version prints after "hotaisle version ".
func (it *RootController) Version() string {
	return it.buildInfo.String()
}

// AddFlags adds the persistent flags shared by every subcommand.
func (it *RootController) AddFlags(command *cobra.Command) {
	command.PersistentFlags().StringP(FlagConfigFile, "c", "",
		"Path to the settings file (default: ~/.hotaisle/config.yaml)")
	command.PersistentFlags().StringP(FlagOutput, "o", OutputJSON,
		fmt.Sprintf("Output format %v", it.printers.Names()))
	command.PersistentFlags().BoolP(FlagVerbose, "v", false, "Enable debug logging")
}

// LoadSettings is the persistent pre-run hook: it loads the settings file and
// applies its log level.
func (it *RootController) LoadSettings(command *cobra.Command, _ []string) error {
	if _, err := it.printers.Get(outputFormat(command)); err != nil {
		return err
	}

	configFile, _ := command.Flags().GetString(FlagConfigFile)
	settings, err := it.repository.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	it.session.Settings = settings

	level, err := settings.Level()
	if err != nil {
		logger.Warnf("%v, using %s", err, level)
	}
	if debugRequested(command) {
		level = logger.DebugLevel
	}
	logger.SetLevel(level)
	logger.Debugf("Using settings file: %s", settings.Path)
	return nil
}

func outputFormat(command *cobra.Command) string {
	format, _ := command.Flags().GetString(FlagOutput)
	if format == "" {
		return OutputJSON
	}
	return format
}
