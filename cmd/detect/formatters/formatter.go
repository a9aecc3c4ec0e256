package formatters

import "fmt"

// OutputFormat identifies a supported detect output format.
type OutputFormat int

const (
	OutputFormatToken OutputFormat = iota
	OutputFormatFlag
	OutputFormatJSON
)

func (f OutputFormat) String() string {
	switch f {
	case OutputFormatToken:
		return "token"
	case OutputFormatFlag:
		return "flag"
	case OutputFormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Result is one detection outcome prepared for rendering.
type Result struct {
	Language string `json:"language"`
	Version  string `json:"version"`
	Flag     string `json:"flag,omitempty"`
	Evidence string `json:"evidence"`
	Detail   string `json:"detail,omitempty"`
}

// Formatter renders detection results for one output format.
type Formatter interface {
	Format(results []Result) (string, error)
}

// NewFormatter returns the formatter registered under the provided name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case OutputFormatToken.String():
		return tokenFormatter{}, nil
	case OutputFormatFlag.String():
		return flagFormatter{}, nil
	case OutputFormatJSON.String():
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (supported: token, flag, json)", format)
	}
}
