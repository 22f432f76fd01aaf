/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/suparena/geostore"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show GeoStore version information",
		Long:  `Display version, commit hash and build date of the geostore binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := geostore.GetVersionInfo()
			return render(cmd.OutOrStdout(), outputFormat(cmd), info, func(w io.Writer) error {
				fmt.Fprintf(w, "GeoStore %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildDate)
				fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
				return nil
			})
		},
	}
	addFormatFlags(cmd)
	return cmd
}
