package initcmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/registry"
	"github.com/LegacyCodeHQ/dialect/toolconfig"
)

type initOptions struct {
	language string
	style    string
}

// Cmd represents the init command.
var Cmd = NewCommand()

// NewCommand returns a new init command instance.
func NewCommand() *cobra.Command {
	opts := &initOptions{
		language: "cpp",
		style:    toolconfig.StyleClangd.String(),
	}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write diagnostics-tool configuration from the detected standard",
		Long: `Detect the project's language-standard version and write the matching
diagnostics-tool configuration into the project directory.

Styles:
  - clangd: a .clangd YAML fragment (default)
  - flags:  a compile_flags.txt

Example usage:
  dialect init
  dialect init path/to/project
  dialect init --style flags
  dialect init --lang c`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", opts.language, "Language to detect (must produce a compiler flag)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "Config style: clangd or flags")

	return cmd
}

func runInit(cmd *cobra.Command, args []string, opts *initOptions) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	style, err := toolconfig.NewStyle(opts.style)
	if err != nil {
		return err
	}

	module, ok := registry.ModuleForName(opts.language)
	if !ok {
		return fmt.Errorf("unsupported language: %s", opts.language)
	}

	detected := module.Detect(dir)
	standardFlag := module.Flag(detected.Version)
	if standardFlag == "" {
		return fmt.Errorf("language %s produces no compiler flag to write", module.Name())
	}

	if detected.Evidence == standards.EvidenceDefault {
		slog.Warn("no build evidence found, writing the default standard",
			"language", detected.Language, "version", detected.Version)
	}

	path, created, err := toolconfig.Write(dir, style, standardFlag)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s (%s)\n", path, standardFlag)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s (%s)\n", path, standardFlag)
	}

	return nil
}
