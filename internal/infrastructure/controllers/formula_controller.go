package controllers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// FormulaController groups the Homebrew formula subcommands.
type FormulaController struct {
	command commands.Formula
}

// NewFormulaController creates a new FormulaController.
func NewFormulaController(command commands.Formula) *FormulaController {
	return &FormulaController{command: command}
}

// GetBind returns the Cobra command metadata for the formula group.
func (it *FormulaController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "formula",
		Short: "Produce the Homebrew formula of a release",
		Long: `Produce the Homebrew formula installing the macOS build of the CLI.

'render' fills in known checksums; 'generate' downloads the release tarballs
and computes them.`,
	}
}

// GetChildren returns the render and generate subcommands.
func (it *FormulaController) GetChildren() []entities.Controller {
	return []entities.Controller{
		&leafController{
			bind: entities.ControllerBind{
				Use:   "render",
				Short: "Render the formula from a version and the two macOS checksums",
				Args:  cobra.NoArgs,
			},
			run: it.render,
			flags: func(command *cobra.Command) {
				addRepositoryFlags(command)
				command.Flags().String("version", "", "Release version, with or without the leading v")
				command.Flags().String("arm64-sha256", "", "SHA-256 of the darwin/arm64 tarball")
				command.Flags().String("amd64-sha256", "", "SHA-256 of the darwin/amd64 tarball")
				command.Flags().String("template", "",
					"Formula file with VERSION, ARM64_SHA256 and AMD64_SHA256 placeholders")
				for _, name := range []string{"version", "arm64-sha256", "amd64-sha256"} {
					_ = command.MarkFlagRequired(name)
				}
			},
		},
		&leafController{
			bind: entities.ControllerBind{
				Use:   "generate",
				Short: "Render the formula of a published release, hashing its tarballs",
				Args:  cobra.NoArgs,
			},
			run: it.generate,
			flags: func(command *cobra.Command) {
				addRepositoryFlags(command)
				command.Flags().String("tag", "", "Release tag (default: latest release)")
			},
		},
	}
}

func (it *FormulaController) render(command *cobra.Command, _ []string) error {
	opts := commands.FormulaRenderOptions{Repository: repositoryFlags(command)}
	opts.Version, _ = command.Flags().GetString("version")
	opts.ARM64SHA256, _ = command.Flags().GetString("arm64-sha256")
	opts.AMD64SHA256, _ = command.Flags().GetString("amd64-sha256")

	if templatePath, _ := command.Flags().GetString("template"); templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		opts.Template = string(data)
	}

	return it.command.Render(opts, command.OutOrStdout())
}

func (it *FormulaController) generate(command *cobra.Command, _ []string) error {
	tag, _ := command.Flags().GetString("tag")
	return it.command.Generate(command.Context(), commands.FormulaGenerateOptions{
		Tag:        tag,
		Repository: repositoryFlags(command),
	}, command.OutOrStdout())
}

func addRepositoryFlags(command *cobra.Command) {
	command.Flags().String("owner", entities.DefaultRepository.Owner, "GitHub owner publishing the releases")
	command.Flags().String("repo", entities.DefaultRepository.Name, "GitHub repository publishing the releases")
}

func repositoryFlags(command *cobra.Command) entities.RepositoryRef {
	owner, _ := command.Flags().GetString("owner")
	name, _ := command.Flags().GetString("repo")
	return entities.RepositoryRef{Owner: owner, Name: name}
}
