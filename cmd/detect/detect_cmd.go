package detect

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/dialect/cmd/detect/formatters"
	"github.com/LegacyCodeHQ/dialect/internal/devlog"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
	"github.com/LegacyCodeHQ/dialect/standards/registry"
)

type detectOptions struct {
	language     string
	outputFormat string
}

// Cmd represents the detect command.
var Cmd = NewCommand()

// NewCommand returns a new detect command instance.
func NewCommand() *cobra.Command {
	opts := &detectOptions{
		outputFormat: formatters.OutputFormatToken.String(),
	}

	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Detect the language-standard version a project targets",
		Long: `Inspect a project directory and infer which language-standard version
compiler-diagnostics tooling should target.

Evidence is read in a fixed priority order per language (a compiled-commands
database first, then the build-description file) and degrades to a fixed
default when nothing matches. Detection never fails.

Without --lang, every language whose build files are present is detected.

Example usage:
  dialect detect
  dialect detect path/to/project
  dialect detect --lang cpp --format flag
  dialect detect --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "Detect a specific language (default: all languages with build files present)")
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat, "Output format: token, flag, or json")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *detectOptions) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	modules, err := resolveModules(dir, opts.language)
	if err != nil {
		return err
	}

	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	var results []formatters.Result
	for _, module := range modules {
		detected := module.Detect(dir)
		devlog.Detection(detected.Language, detected.Version, detected.Evidence.String())

		results = append(results, formatters.Result{
			Language: detected.Language,
			Version:  detected.Version,
			Flag:     module.Flag(detected.Version),
			Evidence: detected.Evidence.String(),
			Detail:   detected.Detail,
		})
	}

	output, err := formatter.Format(results)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), output); err != nil {
		return err
	}

	if copyOutput, err := cmd.Flags().GetBool("clipboard"); err == nil && copyOutput {
		if err := clipboard.WriteAll(output); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}

// resolveModules picks which language modules to run. With no --lang and no
// recognized build files, the C++ module still runs so the command always
// reports a usable default.
func resolveModules(dir, language string) ([]langsupport.Module, error) {
	if language != "" {
		module, ok := registry.ModuleForName(language)
		if !ok {
			return nil, fmt.Errorf("unsupported language: %s", language)
		}
		return []langsupport.Module{module}, nil
	}

	if present := registry.Present(dir); len(present) > 0 {
		return present, nil
	}

	module, _ := registry.ModuleForName("cpp")
	return []langsupport.Module{module}, nil
}
