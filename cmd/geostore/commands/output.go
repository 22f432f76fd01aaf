/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/geostore/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cmd.Flags().Bool("yaml", false, "Output as YAML")
}

func outputFormat(cmd *cobra.Command) string {
	if ok, _ := cmd.Flags().GetBool("json"); ok {
		return formatJSON
	}
	if ok, _ := cmd.Flags().GetBool("yaml"); ok {
		return formatYAML
	}
	return formatText
}

// render writes v in the selected format; text falls back to text(w).
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "error formatting JSON")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "error formatting YAML")
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// writeLabels prints a key → label map as aligned, sorted lines.
func writeLabels(w io.Writer, indent string, m map[string]string) {
	keys := make([]string, 0, len(m))
	width := 0
	for k := range m {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s  %s\n", indent, k, strings.Repeat(" ", width-len(k)), m[k])
	}
}
