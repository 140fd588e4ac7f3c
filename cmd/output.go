package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func writeReport(w io.Writer, format string, report interface{}, text func(io.Writer)) error {
	switch strings.ToLower(format) {
	case "", "text":
		text(w)
		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(report)
	}
	return fmt.Errorf("Unknown output format '%s'", format)
}
