/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package settings loads the GeoStore configuration.
//
// Defaults come from the fields of the settings pages, so a fresh install
// behaves as if every page had been saved once. A YAML file and GEOSTORE_*
// environment variables override them; AWS settings for the DynamoDB store
// are read from AWS_* variables.
package settings
