package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/dialect/cmd/detect"
	"github.com/LegacyCodeHQ/dialect/cmd/initcmd"
	"github.com/LegacyCodeHQ/dialect/cmd/languages"
	"github.com/LegacyCodeHQ/dialect/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dialect",
	Short: "Detect the language-standard version your project targets",
	Long: `Dialect inspects a project directory and infers which language-standard
revision compiler-diagnostics tooling should target, by reading build
artifacts such as compile_commands.json, CMakeLists.txt, go.mod, Cargo.toml,
and Gradle/Maven build scripts.

Use 'dialect --help' to see all available commands, or 'dialect <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(detect.Cmd)
	rootCmd.AddCommand(initcmd.Cmd)
	rootCmd.AddCommand(languages.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	// Add persistent clipboard flag
	rootCmd.PersistentFlags().BoolP("clipboard", "b", false, "Automatically copy output to clipboard")
}
