/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package field provides the typed settings fields and their sanitisers.
package field
