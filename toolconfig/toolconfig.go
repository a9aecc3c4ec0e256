// Package toolconfig renders and writes the diagnostics-tool configuration
// that a detected standard version feeds, currently the clangd family:
// a .clangd YAML fragment or a compile_flags.txt.
package toolconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Style selects which configuration artifact to produce.
type Style int

const (
	StyleClangd Style = iota
	StyleCompileFlags
)

func (s Style) String() string {
	switch s {
	case StyleClangd:
		return "clangd"
	case StyleCompileFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// FileName returns the artifact file name for the style.
func (s Style) FileName() string {
	switch s {
	case StyleClangd:
		return ".clangd"
	case StyleCompileFlags:
		return "compile_flags.txt"
	default:
		return ""
	}
}

// NewStyle resolves a style name from the command line.
func NewStyle(name string) (Style, error) {
	switch name {
	case "clangd":
		return StyleClangd, nil
	case "flags":
		return StyleCompileFlags, nil
	default:
		return 0, fmt.Errorf("unknown config style: %s (supported: clangd, flags)", name)
	}
}

type clangdConfig struct {
	CompileFlags struct {
		Add []string `yaml:"Add"`
	} `yaml:"CompileFlags"`
}

// Render produces the configuration bytes for the given standard flag.
func Render(style Style, standardFlag string) ([]byte, error) {
	switch style {
	case StyleClangd:
		var config clangdConfig
		config.CompileFlags.Add = []string{standardFlag}
		return yaml.Marshal(config)
	case StyleCompileFlags:
		return []byte(standardFlag + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown config style: %d", style)
	}
}

// Write renders the configuration and writes it into dir, replacing any
// existing file. It reports the written path and whether the file was newly
// created.
func Write(dir string, style Style, standardFlag string) (string, bool, error) {
	content, err := Render(style, standardFlag)
	if err != nil {
		return "", false, err
	}

	path := filepath.Join(dir, style.FileName())
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, created, nil
}
