/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
)

// MetaPrefix is prepended to attribute names to form metadata keys.
const MetaPrefix = "_"

type attribute struct {
	value string
	ok    bool
}

// Attributes reads entity attributes from a MetaStore on first access and
// caches them for the lifetime of the entity.
type Attributes struct {
	meta   MetaStore
	id     int64
	logger *zap.SugaredLogger

	mu    sync.Mutex
	cache map[string]attribute
}

// NewAttributes creates the attribute cache of entity id.
func NewAttributes(meta MetaStore, id int64, l *zap.SugaredLogger) *Attributes {
	return &Attributes{meta: meta, id: id, logger: logger.Or(l), cache: make(map[string]attribute)}
}

// Get returns the attribute name. Missing attributes, unbound entities and
// metadata failures all yield ("", false); failures are logged and not cached.
func (a *Attributes) Get(ctx context.Context, name string) (string, bool) {
	if a == nil || a.meta == nil || a.id <= 0 || name == "" {
		return "", false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.cache[name]; ok {
		return v.value, v.ok
	}

	value, ok, err := a.meta.Meta(ctx, a.id, MetaPrefix+name)
	if err != nil {
		a.logger.Warnw("Failed to read attribute", "id", a.id, "attribute", name, "error", err)
		return "", false
	}
	a.cache[name] = attribute{value: value, ok: ok}
	return value, ok
}

// Has reports whether the attribute exists.
func (a *Attributes) Has(ctx context.Context, name string) bool {
	_, ok := a.Get(ctx, name)
	return ok
}

// Set writes the attribute through to the MetaStore and refreshes the cache.
func (a *Attributes) Set(ctx context.Context, name, value string) error {
	if a == nil || a.meta == nil || a.id <= 0 {
		return errors.NewValidationError("id", "attributes require a bound entity")
	}
	if name == "" {
		return errors.NewValidationError("name", "attribute name is required")
	}
	if err := a.meta.SetMeta(ctx, a.id, MetaPrefix+name, value); err != nil {
		return errors.Wrapf(err, "set attribute %s of %d", name, a.id)
	}
	a.mu.Lock()
	a.cache[name] = attribute{value: value, ok: true}
	a.mu.Unlock()
	return nil
}
