/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command geostore administers the geometry stores of a GeoStore install.
package main

import (
	"os"

	"github.com/suparena/geostore/cmd/geostore/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
