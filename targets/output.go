package targets

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, yaml or csv)", s)
}

// Write writes results to w in the given format.
func Write(w io.Writer, format Format, results []*Result) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	}
	return WriteText(w, results)
}

// WriteText prints the decimal pair followed by one notation per line for
// each accepted result. Rejected results print nothing. A batch prefixes
// every block with the target's slug.
func WriteText(w io.Writer, results []*Result) error {
	for _, r := range results {
		if !r.Accepted {
			continue
		}
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "[%s]\n", r.Slug); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, formatDegrees(r.RA), formatDegrees(r.Dec)); err != nil {
			return err
		}
		for _, line := range r.Forms().Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []*Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}

// WriteCSV writes results with a header row.
func WriteCSV(w io.Writer, results []*Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
