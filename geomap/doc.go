/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package geomap defines mapping service providers and their factory.
package geomap
