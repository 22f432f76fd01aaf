/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/geostore/datastore/ddb"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/field"
	"github.com/suparena/geostore/logger"
)

// EnvPrefix prefixes the environment variables overriding configuration keys.
const EnvPrefix = "GEOSTORE"

// Well-known keys outside the settings pages.
const (
	KeyDatabasePath = "database.path"
	KeyLogLevel     = "log.level"
	KeyLogJSON      = "log.json"
)

// LoadOptions select the sources merged into a Config.
type LoadOptions struct {
	// File is an optional YAML configuration file.
	File string
	// EnvFile is an optional dotenv file loaded into the environment first.
	EnvFile string
	// Pages provide the field-driven defaults. Nil uses DefaultPages.
	Pages []Page
	Logger *zap.SugaredLogger
}

// DefaultPages returns the settings pages of the built-in types.
func DefaultPages() []Page {
	return []Page{
		GeneralPage(),
		GeometriesPage(map[string]string{"coordinates": "Coordinates"}, map[string]string{"local": "Local database"}, "local"),
		ProvidersPage(map[string]string{"google": "Google Maps"}),
	}
}

// Config is the merged configuration: defaults from the settings pages,
// then the YAML file, then GEOSTORE_* environment variables.
type Config struct {
	v      *viper.Viper
	fields *field.Factory
	types  map[string]field.Field
	// DynamoDB holds the AWS settings read from the environment.
	DynamoDB ddb.Config
}

// Load builds a Config from opts.
func Load(opts LoadOptions) (*Config, error) {
	l := logger.Or(opts.Logger)

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, "load env file %s", opts.EnvFile)
			}
			l.Debugw("No env file found, proceeding with environment variables", "env_file", opts.EnvFile)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &Config{v: v, fields: field.NewFactory(), types: make(map[string]field.Field)}
	pages := opts.Pages
	if pages == nil {
		pages = DefaultPages()
	}
	c.setDefaults(pages)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", opts.File)
		}
		l.Debugw("Loaded config file", "file", opts.File)
	}

	if err := env.Parse(&c.DynamoDB); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return c, nil
}

// setDefaults registers the default of every page field and remembers the
// field used to sanitise its key.
func (c *Config) setDefaults(pages []Page) {
	c.v.SetDefault(KeyDatabasePath, "geostore.db")
	c.v.SetDefault(KeyLogLevel, "info")
	c.v.SetDefault(KeyLogJSON, false)

	for _, p := range pages {
		for _, s := range p.Sections {
			for _, spec := range s.Fields {
				fld, ok := c.fields.Field(spec, "", true)
				if !ok {
					continue
				}
				key := p.Key(s.ID, spec.ID)
				c.types[key] = fld
				c.v.SetDefault(key, fld.Default())
			}
		}
	}
}

// Get returns the value of key, sanitised by its field when key belongs to a
// settings page.
func (c *Config) Get(key string) any {
	raw := c.v.Get(key)
	if fld, ok := c.types[key]; ok {
		return fld.Sanitize(raw)
	}
	return raw
}

// String returns the value of key as a sanitised string.
func (c *Config) String(key string) string {
	if _, ok := c.types[key]; ok {
		return field.SanitizeText(c.Get(key))
	}
	return c.v.GetString(key)
}

// Set overrides key with value after sanitising it.
func (c *Config) Set(key string, value any) {
	if fld, ok := c.types[key]; ok {
		value = fld.Sanitize(value)
	}
	c.v.Set(key, value)
}

// DefaultStore implements host.Options.
func (c *Config) DefaultStore(geometryType string) string {
	return c.String("geometries." + geometryType + ".store")
}

// MapAPIKey implements host.Options.
func (c *Config) MapAPIKey(mapType string) string {
	return c.String("maps.map_types." + mapType + ".api")
}

// APIEnabled reports whether the API checkbox is set.
func (c *Config) APIEnabled() bool {
	return c.Get("general.api.enable") == "yes"
}

// ContentTypes lists the post types with geo data.
func (c *Config) ContentTypes() []string {
	if v, ok := c.Get("general.content_integration.posts").([]string); ok {
		return v
	}
	return nil
}

// DatabasePath is the SQLite file of the local store.
func (c *Config) DatabasePath() string {
	return c.v.GetString(KeyDatabasePath)
}

// LogLevel is the configured log level.
func (c *Config) LogLevel() string {
	return c.v.GetString(KeyLogLevel)
}

// LogJSON reports whether logs are written as JSON.
func (c *Config) LogJSON() bool {
	return c.v.GetBool(KeyLogJSON)
}

// Viper returns the underlying viper instance.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// WriteYAML dumps the effective configuration.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.v.AllSettings()); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return enc.Close()
}
