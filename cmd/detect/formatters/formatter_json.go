package formatters

import "encoding/json"

type jsonFormatter struct{}

func (jsonFormatter) Format(results []Result) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
