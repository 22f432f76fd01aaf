/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/suparena/geostore"
)

func newSupportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "supports stores|geometries",
		Short:     "Cross-reference stores and geometries",
		Long:      `"stores" lists the stores able to persist each geometry type; "geometries" lists the geometry types each store persists.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{geostore.SupportStores, geostore.SupportGeometries},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			support, err := b.WhichSupports(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat(cmd), support, func(w io.Writer) error {
				if len(support) == 0 {
					fmt.Fprintln(w, "No matches")
					return nil
				}
				keys := make([]string, 0, len(support))
				for k := range support {
					keys = append(keys, k)
				}
				slices.Sort(keys)
				for _, k := range keys {
					fmt.Fprintf(w, "%s:\n", k)
					writeLabels(w, "  ", support[k])
				}
				return nil
			})
		},
	}
	addFormatFlags(cmd)
	return cmd
}
