/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"sort"

	"github.com/suparena/geostore/field"
)

// Page groups settings sections under a configuration key prefix.
type Page struct {
	ID       string
	Label    string
	Prefix   string
	Sections []Section
}

// Section is a group of fields; field keys are Prefix.Section.Field.
type Section struct {
	ID     string
	Title  string
	Fields []field.Spec
}

// Key returns the configuration key of a field of this page.
func (p Page) Key(section, name string) string {
	return p.Prefix + "." + section + "." + name
}

// GeneralPage holds the API and content integration settings.
func GeneralPage() Page {
	return Page{
		ID:     "general",
		Label:  "General",
		Prefix: "general",
		Sections: []Section{
			{
				ID:    "api",
				Title: "General options",
				Fields: []field.Spec{{
					ID:          "enable",
					Title:       "GeoBench API",
					Description: "Enable REST API",
					Type:        "checkbox",
					Default:     "yes",
				}},
			},
			{
				ID:    "content_integration",
				Title: "Content integration",
				Fields: []field.Spec{{
					ID:          "posts",
					Title:       "Posts",
					Description: "Select which content among posts should have geo data.",
					Type:        "select",
					Multiselect: true,
					Options:     map[string]string{"post": "Posts", "page": "Pages"},
					Default:     "post",
				}},
			},
		},
	}
}

// GeometriesPage holds the store configured per geometry type.
func GeometriesPage(geometryTypes, storeTypes map[string]string, defaultStore string) Page {
	p := Page{ID: "geometries", Label: "Geometries", Prefix: "geometries"}
	for _, t := range sortedKeys(geometryTypes) {
		p.Sections = append(p.Sections, Section{
			ID:    t,
			Title: geometryTypes[t],
			Fields: []field.Spec{{
				ID:      "store",
				Title:   "Store",
				Type:    "select",
				Options: storeTypes,
				Default: defaultStore,
			}},
		})
	}
	return p
}

// ProvidersPage holds the API key of each map provider.
func ProvidersPage(mapTypes map[string]string) Page {
	p := Page{ID: "providers", Label: "Service Providers", Prefix: "maps"}
	for _, t := range sortedKeys(mapTypes) {
		p.Sections = append(p.Sections, Section{
			ID:    "map_types." + t,
			Title: mapTypes[t],
			Fields: []field.Spec{{
				ID:      "api",
				Title:   "API key",
				Type:    "standard",
				Default: "",
			}},
		})
	}
	return p
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
