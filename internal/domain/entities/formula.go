package entities

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Placeholders substituted in a formula template by the release pipeline.
const (
	PlaceholderVersion     = "VERSION"
	PlaceholderARM64SHA256 = "ARM64_SHA256"
	PlaceholderAMD64SHA256 = "AMD64_SHA256"
)

//go:embed formula.rb.tmpl
var formulaTemplate string

var parsedFormulaTemplate = template.Must(template.New("formula").Parse(formulaTemplate))

// RepositoryRef points at the GitHub repository that publishes releases.
type RepositoryRef struct {
	Owner string
	Name  string
}

// DefaultRepository is where hotaisle-cli releases are published.
//
//nolint:gochecknoglobals // read-only default
var DefaultRepository = RepositoryRef{Owner: "hotaisle", Name: ProjectName}

// Homepage is the repository's web URL.
func (it RepositoryRef) Homepage() string {
	return fmt.Sprintf("https://github.com/%s/%s", it.Owner, it.Name)
}

// DownloadURL is the browser download URL of asset in the release tagged tag.
func (it RepositoryRef) DownloadURL(tag, asset string) string {
	return fmt.Sprintf("%s/releases/download/%s/%s", it.Homepage(), tag, asset)
}

func (it RepositoryRef) String() string {
	return it.Owner + "/" + it.Name
}

// FormulaAsset is the per-architecture part of a formula.
type FormulaAsset struct {
	URL    string
	SHA256 string
	Binary string
}

// Formula is a Homebrew formula installing the macOS build of the CLI.
type Formula struct {
	ClassName   string
	Description string
	Homepage    string
	Version     string
	Binary      string
	ARM64       FormulaAsset
	AMD64       FormulaAsset
}

// NewFormula builds the formula for version from the digests of the two macOS tarballs.
func NewFormula(repository RepositoryRef, version string, checksums Checksums) (*Formula, error) {
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}
	version = TrimVersionPrefix(version)
	tag := NormalizeVersion(version)

	formula := &Formula{
		ClassName:   "HotaisleCli",
		Description: "Hotaisle CLI tool",
		Homepage:    repository.Homepage(),
		Version:     version,
		Binary:      BinaryName,
	}

	for _, target := range []struct {
		arch  string
		asset *FormulaAsset
	}{
		{arch: ArchARM64, asset: &formula.ARM64},
		{arch: ArchAMD64, asset: &formula.AMD64},
	} {
		platform := Platform{OS: OSDarwin, Arch: target.arch}
		name := platform.AssetName(version)
		digest, err := checksums.Lookup(name)
		if err != nil {
			return nil, err
		}
		digest = strings.ToLower(digest)
		if err = ValidateChecksum(digest); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		*target.asset = FormulaAsset{
			URL:    repository.DownloadURL(tag, name),
			SHA256: digest,
			Binary: platform.BinaryName(),
		}
	}

	return formula, nil
}

// Render writes the formula as Ruby source.
func (it *Formula) Render(writer io.Writer) error {
	if err := parsedFormulaTemplate.Execute(writer, it); err != nil {
		return fmt.Errorf("failed to render formula: %w", err)
	}
	return nil
}

// SubstitutePlaceholders fills VERSION, ARM64_SHA256 and AMD64_SHA256 in a
// formula template the way the release pipeline does.
func SubstitutePlaceholders(template, version, arm64SHA256, amd64SHA256 string) (string, error) {
	if err := ValidateVersion(version); err != nil {
		return "", err
	}
	for _, digest := range []string{arm64SHA256, amd64SHA256} {
		if err := ValidateChecksum(digest); err != nil {
			return "", err
		}
	}

	replacer := strings.NewReplacer(
		PlaceholderARM64SHA256, strings.ToLower(arm64SHA256),
		PlaceholderAMD64SHA256, strings.ToLower(amd64SHA256),
		PlaceholderVersion, TrimVersionPrefix(version),
	)
	return replacer.Replace(template), nil
}
