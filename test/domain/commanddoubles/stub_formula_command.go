//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
)

// StubFormulaCommand is a stub implementation of commands.Formula that writes Output.
type StubFormulaCommand struct {
	Output string
	Err    error

	RenderOpts   []commands.FormulaRenderOptions
	GenerateOpts []commands.FormulaGenerateOptions
}

var _ commands.Formula = (*StubFormulaCommand)(nil)

func (s *StubFormulaCommand) Render(opts commands.FormulaRenderOptions, writer io.Writer) error {
	s.RenderOpts = append(s.RenderOpts, opts)
	return s.write(writer)
}

func (s *StubFormulaCommand) Generate(_ context.Context, opts commands.FormulaGenerateOptions, writer io.Writer) error {
	s.GenerateOpts = append(s.GenerateOpts, opts)
	return s.write(writer)
}

func (s *StubFormulaCommand) write(writer io.Writer) error {
	if s.Err != nil {
		return s.Err
	}
	_, err := io.WriteString(writer, s.Output)
	return err
}
