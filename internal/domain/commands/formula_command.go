package commands

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// Formula is the interface for producing the Homebrew formula.
type Formula interface {
	Render(opts FormulaRenderOptions, writer io.Writer) error
	Generate(ctx context.Context, opts FormulaGenerateOptions, writer io.Writer) error
}

// FormulaRenderOptions holds the values of a formula rendered from known checksums.
type FormulaRenderOptions struct {
	Version     string
	ARM64SHA256 string
	AMD64SHA256 string
	// Template, when set, is a formula with VERSION/ARM64_SHA256/AMD64_SHA256
	// placeholders used instead of the built-in one.
	Template   string
	Repository entities.RepositoryRef
}

// FormulaGenerateOptions selects the release a formula is generated from.
type FormulaGenerateOptions struct {
	Tag        string
	Repository entities.RepositoryRef
}

// FormulaCommand renders formulas, either from given checksums or by hashing release assets.
type FormulaCommand struct {
	releases repositories.ReleaseRepository
}

// NewFormulaCommand creates a new FormulaCommand.
func NewFormulaCommand(releases repositories.ReleaseRepository) *FormulaCommand {
	return &FormulaCommand{releases: releases}
}

// Render writes the formula for the given version and checksums.
func (it *FormulaCommand) Render(opts FormulaRenderOptions, writer io.Writer) error {
	if opts.Template != "" {
		rendered, err := entities.SubstitutePlaceholders(
			opts.Template, opts.Version, opts.ARM64SHA256, opts.AMD64SHA256,
		)
		if err != nil {
			return err
		}
		_, err = io.WriteString(writer, rendered)
		return err
	}

	version := entities.TrimVersionPrefix(opts.Version)
	checksums := entities.Checksums{
		entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchARM64}.AssetName(version): opts.ARM64SHA256,
		entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchAMD64}.AssetName(version): opts.AMD64SHA256,
	}
	formula, err := entities.NewFormula(opts.Repository, opts.Version, checksums)
	if err != nil {
		return err
	}
	return formula.Render(writer)
}

// Generate downloads both macOS tarballs of a release concurrently, hashes them
// and writes the resulting formula. A published checksums.txt must agree.
func (it *FormulaCommand) Generate(ctx context.Context, opts FormulaGenerateOptions, writer io.Writer) error {
	release, err := it.releases.GetRelease(ctx, opts.Repository, opts.Tag)
	if err != nil {
		return fmt.Errorf("failed to get release: %w", err)
	}
	if err = entities.ValidateVersion(release.Version()); err != nil {
		return err
	}
	logger.Infof("Generating formula for %s %s", opts.Repository, release.Tag)

	var assets []entities.ReleaseAsset
	for _, arch := range []string{entities.ArchARM64, entities.ArchAMD64} {
		asset, assetErr := release.PlatformAsset(entities.Platform{OS: entities.OSDarwin, Arch: arch})
		if assetErr != nil {
			return assetErr
		}
		assets = append(assets, asset)
	}

	checksums, err := it.hashAssets(ctx, assets)
	if err != nil {
		return err
	}

	if err = it.crossCheck(ctx, release, checksums); err != nil {
		return err
	}

	formula, err := entities.NewFormula(opts.Repository, release.Version(), checksums)
	if err != nil {
		return err
	}
	return formula.Render(writer)
}

// hashAssets downloads every asset concurrently; the first failure cancels the rest.
func (it *FormulaCommand) hashAssets(
	ctx context.Context, assets []entities.ReleaseAsset,
) (entities.Checksums, error) {
	var mutex sync.Mutex
	checksums := entities.Checksums{}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, asset := range assets {
		group.Go(func() error {
			hasher := sha256.New()
			if err := it.releases.Download(groupCtx, asset, hasher); err != nil {
				return fmt.Errorf("failed to download %s: %w", asset.Name, err)
			}
			digest := hex.EncodeToString(hasher.Sum(nil))
			logger.Debugf("%s  %s", digest, asset.Name)

			mutex.Lock()
			defer mutex.Unlock()
			checksums[asset.Name] = digest
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return checksums, nil
}

func (it *FormulaCommand) crossCheck(
	ctx context.Context, release *entities.Release, computed entities.Checksums,
) error {
	manifest, err := release.Asset(entities.ChecksumsAssetName)
	if err != nil {
		logger.Debugf("Release %s has no %s, skipping cross-check", release.Tag, entities.ChecksumsAssetName)
		return nil
	}

	published, err := downloadChecksums(ctx, it.releases, manifest)
	if err != nil {
		return err
	}
	for name, digest := range computed {
		expected, lookupErr := published.Lookup(name)
		if lookupErr != nil {
			logger.Warnf("%s does not list %s", entities.ChecksumsAssetName, name)
			continue
		}
		if expected != digest {
			return fmt.Errorf("%w: %s: published %s, downloaded %s", entities.ErrChecksumMismatch, name, expected, digest)
		}
	}
	return nil
}

func downloadChecksums(
	ctx context.Context, releases repositories.ReleaseRepository, manifest entities.ReleaseAsset,
) (entities.Checksums, error) {
	var buffer bytes.Buffer
	if err := releases.Download(ctx, manifest, &buffer); err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", manifest.Name, err)
	}
	return entities.ParseChecksums(&buffer)
}
