package virtprops

import (
	"context"
	"strings"
	"sync"

	"github.com/yetorm/virtprops/logger"
	"github.com/yetorm/virtprops/reflection"
	"github.com/yetorm/virtprops/schema"
)

// DB resolves and caches entity properties
type DB struct {
	*Config
	parser     *schema.Parser
	cacheStore *sync.Map
	ctx        context.Context
}

// Open initialize db over reflector
func Open(reflector reflection.Reflector, opts ...ConfigOption) (*DB, error) {
	if reflector == nil {
		return nil, ErrMissingReflector
	}

	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}
	config.applyDefaults()

	return &DB{
		Config: config,
		parser: &schema.Parser{
			Reflector:   reflector,
			Qualifier:   config.Qualifier,
			Namer:       config.NamingStrategy,
			BaseEntity:  config.BaseEntity,
			UnionPolicy: config.UnionPolicy,
			Annotations: config.AnnotationCache,
		},
		cacheStore: &sync.Map{},
		ctx:        context.Background(),
	}, nil
}

// WithContext change current context used for logging
func (db *DB) WithContext(ctx context.Context) *DB {
	tx := *db
	tx.ctx = ctx
	return &tx
}

// Debug start debug mode
func (db *DB) Debug() *DB {
	tx := *db
	config := *db.Config
	config.Logger = db.Logger.LogMode(logger.Info)
	tx.Config = &config
	return &tx
}

// Schema returns the merged schema of class
func (db *DB) Schema(class string) (*schema.Schema, error) {
	key := strings.TrimPrefix(class, `\`)
	_, cached := db.cacheStore.Load(key)

	s, err := db.parser.Parse(class, db.cacheStore)
	if err != nil {
		db.Logger.Error(db.ctx, "failed to resolve properties of %s: %v", class, err)
		return nil, err
	}

	if !cached {
		db.Logger.Info(db.ctx, "resolved %d properties of %s", len(s.Properties), s.Name)
	}
	return s, nil
}

// Properties returns the properties of class, accessor properties first
func (db *DB) Properties(class string) ([]schema.Property, error) {
	s, err := db.Schema(class)
	if err != nil {
		return nil, err
	}
	return s.Properties, nil
}

// PropertiesMap returns the properties of class keyed by name
func (db *DB) PropertiesMap(class string) (map[string]schema.Property, error) {
	s, err := db.Schema(class)
	if err != nil {
		return nil, err
	}
	return s.PropertiesByName, nil
}

// Property returns the named property of class or def
func (db *DB) Property(class, name string, def schema.Property) (schema.Property, error) {
	s, err := db.Schema(class)
	if err != nil {
		return nil, err
	}
	return s.Property(name, def), nil
}

// HasProperty reports whether class has the named property
func (db *DB) HasProperty(class, name string) (bool, error) {
	s, err := db.Schema(class)
	if err != nil {
		return false, err
	}
	return s.HasProperty(name), nil
}
