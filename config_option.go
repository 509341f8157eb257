package virtprops

import (
	"github.com/yetorm/virtprops/logger"
	"github.com/yetorm/virtprops/schema"
)

// ConfigOption use functional option for virtprops Config.
type ConfigOption func(c *Config)

// WithBaseEntity set the class entities derive from.
func WithBaseEntity(class string) ConfigOption {
	return func(c *Config) {
		c.BaseEntity = class
	}
}

// WithNamingStrategy set schema namer.
func WithNamingStrategy(namer schema.Namer) ConfigOption {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithQualifier set the class name qualifier.
func WithQualifier(qualifier schema.Qualifier) ConfigOption {
	return func(c *Config) {
		c.Qualifier = qualifier
	}
}

// WithUnionPolicy set union policy, see schema.StrictUnion.
func WithUnionPolicy(policy schema.UnionPolicy) ConfigOption {
	return func(c *Config) {
		c.UnionPolicy = policy
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithAnnotationCache set the annotation cache.
func WithAnnotationCache(cache schema.AnnotationCache) ConfigOption {
	return func(c *Config) {
		c.AnnotationCache = cache
	}
}
