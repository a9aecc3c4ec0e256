package formatters

import (
	"fmt"
	"strings"
)

// flagFormatter prints the materialized compiler flag for each result,
// falling back to the bare version token for languages whose tooling takes
// no flag.
type flagFormatter struct{}

func (flagFormatter) Format(results []Result) (string, error) {
	if len(results) == 1 {
		return renderFlag(results[0]) + "\n", nil
	}

	var b strings.Builder
	for _, result := range results {
		fmt.Fprintf(&b, "%s %s\n", result.Language, renderFlag(result))
	}
	return b.String(), nil
}

func renderFlag(result Result) string {
	if result.Flag != "" {
		return result.Flag
	}
	return result.Version
}
