package formatters

import (
	"fmt"
	"strings"
)

// tokenFormatter prints bare version tokens. A single result prints only the
// token so scripts can consume it directly; multiple results are prefixed
// with their language name.
type tokenFormatter struct{}

func (tokenFormatter) Format(results []Result) (string, error) {
	if len(results) == 1 {
		return results[0].Version + "\n", nil
	}

	var b strings.Builder
	for _, result := range results {
		fmt.Fprintf(&b, "%s %s\n", result.Language, result.Version)
	}
	return b.String(), nil
}
