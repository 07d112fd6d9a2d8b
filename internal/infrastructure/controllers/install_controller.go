package controllers

import (
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// InstallController handles the "install" subcommand (self-install and upgrade).
type InstallController struct {
	command   commands.Install
	buildInfo *entities.BuildInfo
	printers  *PrinterRegistry
}

// NewInstallController creates a new InstallController.
func NewInstallController(
	command commands.Install, buildInfo *entities.BuildInfo, printers *PrinterRegistry,
) *InstallController {
	return &InstallController{command: command, buildInfo: buildInfo, printers: printers}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "install",
		Short:   "Install or upgrade the hotaisle binary from a GitHub release",
		Aliases: []string{"upgrade"},
		Long: `Download the release tarball for this platform, verify its SHA-256
against --sha256 or the release's checksums.txt, install the binary as
<bin-dir>/hotaisle and check that it reports the expected version.

Nothing is installed when no checksum is available or it does not match.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(command *cobra.Command) {
	addRepositoryFlags(command)
	command.Flags().String("tag", "", "Release tag (default: latest release)")
	command.Flags().String("bin-dir", "",
		"Installation directory (default: /opt/homebrew/bin on Apple silicon, /usr/local/bin elsewhere)")
	command.Flags().String("sha256", "", "Expected SHA-256 of the tarball (default: from checksums.txt)")
	command.Flags().Bool("force", false, "Install even when the running version is up to date")
	command.Flags().Duration("timeout", commands.DefaultSmokeTestTimeout, "Timeout of the post-install smoke test")
}

// Execute runs the install.
func (it *InstallController) Execute(command *cobra.Command, _ []string) error {
	opts := commands.InstallOptions{
		CurrentVersion: it.buildInfo.Version,
		Platform:       entities.CurrentPlatform(),
		Repository:     repositoryFlags(command),
	}
	opts.Tag, _ = command.Flags().GetString("tag")
	opts.BinDir, _ = command.Flags().GetString("bin-dir")
	opts.SHA256, _ = command.Flags().GetString("sha256")
	opts.Force, _ = command.Flags().GetBool("force")
	opts.Timeout, _ = command.Flags().GetDuration("timeout")

	result, err := it.command.Execute(command.Context(), opts)
	if result != nil {
		// a failed smoke test still leaves an installed binary worth reporting
		if renderErr := render(command, it.printers, result); renderErr != nil && err == nil {
			return renderErr
		}
	}
	return err
}
