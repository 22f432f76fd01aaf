/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geomap

import (
	"context"

	"github.com/suparena/geostore/host"
)

const (
	// TypeGoogle is the registry key of the Google Maps provider.
	TypeGoogle = "google"
	// GoogleVersion is the Google Maps JavaScript API version used.
	GoogleVersion = "3.2.0"
)

// Google is the Google Maps provider.
type Google struct {
	*Base
}

// NewGoogle builds a Google map.
func NewGoogle(_ context.Context, env *Env, post *host.Post, args Args) (Map, error) {
	typ := args.Type
	if typ == "" {
		typ = TypeGoogle
	}
	return &Google{Base: NewBase(env, post, typ, GoogleVersion)}, nil
}
