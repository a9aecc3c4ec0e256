package cpp

import (
	"os"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/LegacyCodeHQ/dialect/standards/findup"
)

const compileCommandsFile = "compile_commands.json"

var cxxStdFlagPattern = regexp.MustCompile(`-std=(?:gnu|c)\+\+(\d+)`)

// compileCommandsStandard reads the nearest compile_commands.json and matches
// a -std flag in the first record's command line. Entries may carry either a
// "command" string or an "arguments" array; both forms are accepted. The
// second return value is the database path, for evidence reporting.
func compileCommandsStandard(dir string) (string, string, bool) {
	path, ok := findup.Nearest(dir, compileCommandsFile)
	if !ok {
		return "", "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	command := firstRecordCommand(data)
	if command == "" {
		return "", "", false
	}

	match := cxxStdFlagPattern.FindStringSubmatch(command)
	if match == nil {
		return "", "", false
	}

	return match[1], path, true
}

func firstRecordCommand(data []byte) string {
	if command := gjson.GetBytes(data, "0.command"); command.Type == gjson.String {
		return command.String()
	}

	arguments := gjson.GetBytes(data, "0.arguments")
	if !arguments.IsArray() {
		return ""
	}

	var parts []string
	for _, argument := range arguments.Array() {
		parts = append(parts, argument.String())
	}
	return strings.Join(parts, " ")
}
