package virtprops

import (
	"github.com/yetorm/virtprops/logger"
	"github.com/yetorm/virtprops/schema"
)

// Config virtprops config
type Config struct {
	// BaseEntity class every entity must derive from, defaults to schema.DefaultBaseEntity
	BaseEntity string
	// NamingStrategy derives Schema.Table, pluralized snake_case by default
	NamingStrategy schema.Namer
	// Qualifier expands class names found in declarations and @return tags
	Qualifier schema.Qualifier
	// UnionPolicy decides what happens to `int|string` style unions
	UnionPolicy schema.UnionPolicy
	// Logger
	Logger logger.Interface
	// AnnotationCache per-class annotation properties, share it to reuse work across DBs
	AnnotationCache schema.AnnotationCache
}

func (c *Config) applyDefaults() {
	if c.BaseEntity == "" {
		c.BaseEntity = schema.DefaultBaseEntity
	}

	if c.NamingStrategy == nil {
		c.NamingStrategy = schema.NamingStrategy{}
	}

	if c.UnionPolicy == nil {
		c.UnionPolicy = schema.LenientUnion
	}

	if c.Logger == nil {
		c.Logger = logger.Default
	}

	if c.AnnotationCache == nil {
		c.AnnotationCache = schema.NewStore[*schema.ClassProperties]()
	}
}
