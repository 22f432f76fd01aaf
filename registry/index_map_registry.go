/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"maps"
	"sync"
)

// Index maps associate a geometry type with the key templates a DynamoDB
// backend uses to lay out its items (PK, SK, GSI keys).

var (
	indexMapRegistry = make(map[string]map[string]string)
	mu               sync.RWMutex
)

// RegisterIndexMap associates a geometry type with a DynamoDB index map.
// Templates reference item attributes with macros such as "GEO#{ID}".
func RegisterIndexMap(geometryType string, idxMap map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	indexMapRegistry[geometryType] = maps.Clone(idxMap)
}

// GetIndexMap retrieves a copy of the index map for a geometry type, if any.
func GetIndexMap(geometryType string) (map[string]string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := indexMapRegistry[geometryType]
	if !ok {
		return nil, false
	}
	return maps.Clone(m), true
}
