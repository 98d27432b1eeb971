package odata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/fluentsql"
)

// Config is the YAML form of the mapper options.
//
//	dialect: sqlserver
//	table: Users u
//	unknown_fields: reject
//	column_naming: snake
//	max_top: 100
//	cache_size: 512
type Config struct {
	Dialect       string `yaml:"dialect,omitempty"`
	Table         string `yaml:"table,omitempty"`
	UnknownFields string `yaml:"unknown_fields,omitempty"`
	ColumnNaming  string `yaml:"column_naming,omitempty"`
	MaxTop        int    `yaml:"max_top,omitempty"`
	CacheSize     int    `yaml:"cache_size,omitempty"`
}

// LoadConfig reads a YAML config file. A missing file yields an empty config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read odata config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse odata config: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into mapper options. A positive cache size
// adds an in-memory LRU cache.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Dialect != "" {
		opts = append(opts, WithDialect(c.Dialect))
	}
	if c.Table != "" {
		opts = append(opts, WithTable(c.Table))
	}
	policy, err := ParseUnknownFieldPolicy(c.UnknownFields)
	if err != nil {
		return nil, err
	}
	naming, err := ParseColumnNaming(c.ColumnNaming)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithPolicy(policy), WithColumnNaming(naming), WithMaxTop(c.MaxTop))
	switch {
	case c.CacheSize < 0:
		return nil, NewConfigError("cache_size", c.CacheSize, "must not be negative")
	case c.CacheSize > 0:
		cache, err := fluentsql.NewLRUCache(c.CacheSize)
		if err != nil {
			return nil, NewConfigError("cache_size", c.CacheSize, err.Error())
		}
		opts = append(opts, WithCache(cache, 0))
	}
	return opts, nil
}

// NewFromConfig returns a Mapper built from cfg followed by extra options.
func NewFromConfig(cfg *Config, extra ...Option) (*Mapper, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
