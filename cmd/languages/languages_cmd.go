package languages

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/dialect/standards/registry"
)

// Cmd represents the languages command.
var Cmd = NewCommand()

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List all supported languages and their build files",
		Long: `List all supported programming languages, the build files their detection
reads, and how mature each language's support is.

Examples:
  dialect languages`,
		RunE: runLanguages,
	}

	return cmd
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	for _, module := range registry.Modules() {
		maturity := module.Maturity()
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) %s\n",
			maturity.Symbol(), module.Name(), strings.Join(module.BuildFiles(), ", "), maturity.DisplayName()); err != nil {
			return err
		}
	}

	return nil
}
