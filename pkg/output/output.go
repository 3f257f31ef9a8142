// Package output renders query results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"golang.org/x/exp/slices"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatCSV    Format = "csv"
)

var Formats = []Format{FormatJSON, FormatPretty, FormatCSV}

func ParseFormat(format string) (Format, error) {
	if format == "" {
		return FormatJSON, nil
	}

	if !slices.Contains(Formats, Format(format)) {
		return "", fmt.Errorf("unknown output format %q, expected one of json, pretty or csv", format)
	}

	return Format(format), nil
}

func Write(w io.Writer, format Format, value any) error {
	switch format {
	case FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", value)
		return err
	case FormatCSV:
		rows, err := Rows(value)
		if err != nil {
			return err
		}

		return gocsv.Marshal(rows, w)
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	}
}
