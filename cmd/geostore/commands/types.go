/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type typesOutput struct {
	Geometries map[string]string `json:"geometries" yaml:"geometries"`
	Maps       map[string]string `json:"maps" yaml:"maps"`
	Stores     map[string]string `json:"stores" yaml:"stores"`
	Fields     map[string]string `json:"fields" yaml:"fields"`
}

func newTypesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered types",
		Long:  `List the registered geometry, map, store and field types with their labels.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			out := typesOutput{
				Geometries: b.Geometries.Types(),
				Maps:       b.Maps.Types(),
				Stores:     b.Stores.Types(),
				Fields:     b.Fields.Types(),
			}
			return render(cmd.OutOrStdout(), outputFormat(cmd), out, func(w io.Writer) error {
				for _, section := range []struct {
					title string
					types map[string]string
				}{
					{"Geometries", out.Geometries},
					{"Maps", out.Maps},
					{"Stores", out.Stores},
					{"Fields", out.Fields},
				} {
					fmt.Fprintf(w, "%s:\n", section.title)
					writeLabels(w, "  ", section.types)
				}
				return nil
			})
		},
	}
	addFormatFlags(cmd)
	return cmd
}
