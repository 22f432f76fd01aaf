/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geomap

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/geostore/hooks"
	"github.com/suparena/geostore/host"
	"github.com/suparena/geostore/logger"
)

// Map is a mapping service provider bound to a content record.
type Map interface {
	host.Entity

	Type() string
	Title() string
	Attribute(ctx context.Context, name string) (string, bool)
	HasAttribute(ctx context.Context, name string) bool
	// APIKey is the provider key configured for the map type, "" if none.
	APIKey() string
	// Version is the provider API version.
	Version() string
}

// Env carries the collaborators maps are built with.
type Env struct {
	Content    host.ContentProvider
	Classifier host.Classifier
	Meta       host.MetaStore
	Options    host.Options
	Hooks      *hooks.Hooks
	Logger     *zap.SugaredLogger
}

func (e *Env) logger() *zap.SugaredLogger {
	if e == nil {
		return logger.Logger
	}
	return logger.Or(e.Logger)
}

// Args are the construction arguments handed to a Constructor.
type Args struct {
	Type string
}

// Constructor builds a map for post.
type Constructor func(ctx context.Context, env *Env, post *host.Post, args Args) (Map, error)

// Base implements the parts of Map shared by every provider.
type Base struct {
	env     *Env
	id      int64
	typ     string
	version string
	post    *host.Post
	apiKey  string
	attrs   *host.Attributes
}

// NewBase binds a map of type typ to post. Bound maps read their API key
// from the configured options.
func NewBase(env *Env, post *host.Post, typ, version string) *Base {
	if env == nil {
		env = &Env{}
	}
	b := &Base{env: env, typ: typ, version: version, post: post}
	if post != nil && post.ID > 0 {
		b.id = post.ID
	}
	if b.id > 0 && b.typ != "" && env.Options != nil {
		b.apiKey = env.Options.MapAPIKey(b.typ)
	}
	b.attrs = host.NewAttributes(env.Meta, b.id, env.logger())
	return b
}

func (b *Base) ID() int64        { return b.id }
func (b *Base) Type() string     { return b.typ }
func (b *Base) Post() *host.Post { return b.post }
func (b *Base) APIKey() string   { return b.apiKey }
func (b *Base) Version() string  { return b.version }

func (b *Base) Title() string {
	if b.post == nil {
		return ""
	}
	if b.env.Hooks == nil {
		return b.post.Title
	}
	return b.env.Hooks.Title.Apply(b.post.Title, hooks.TitleArgs{ID: b.id, Type: b.typ})
}

func (b *Base) Attribute(ctx context.Context, name string) (string, bool) {
	return b.attrs.Get(ctx, name)
}

func (b *Base) HasAttribute(ctx context.Context, name string) bool {
	return b.attrs.Has(ctx, name)
}
