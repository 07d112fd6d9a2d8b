package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Printer writes a command result to w in one output format.
type Printer func(w io.Writer, value any) error

// PrinterRegistry manages the output formats selectable with --output.
type PrinterRegistry struct {
	printers map[string]Printer
}

// NewPrinterRegistry creates a registry holding the json and yaml printers.
func NewPrinterRegistry() *PrinterRegistry {
	registry := &PrinterRegistry{
		printers: make(map[string]Printer),
	}
	registry.Register(OutputJSON, printJSON)
	registry.Register(OutputYAML, printYAML)
	return registry
}

// Register adds a printer under the given format name (e.g. "json").
func (r *PrinterRegistry) Register(name string, printer Printer) {
	r.printers[name] = printer
}

// Get returns the printer for the given format name.
func (r *PrinterRegistry) Get(name string) (Printer, error) {
	printer, ok := r.printers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (valid formats are: %v)", name, r.Names())
	}
	return printer, nil
}

// Names returns the registered format names, sorted.
func (r *PrinterRegistry) Names() []string {
	names := make([]string, 0, len(r.printers))
	for name := range r.printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printYAML goes through the JSON encoding first so API field names and
// omitempty rules are the same in both formats.
func printYAML(w io.Writer, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	clearFlowStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // two-space indentation
	if err = encoder.Encode(&node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// clearFlowStyle turns the inline, double-quoted JSON layout into plain block
// YAML. Strings that would read back as another type stay quoted.
func clearFlowStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearFlowStyle(child)
	}
}
