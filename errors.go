package virtprops

import (
	"errors"

	"github.com/yetorm/virtprops/schema"
)

var (
	// ErrMissingReflector Open called without a reflector
	ErrMissingReflector = errors.New("reflector required")
	// ErrMalformedPropertyDeclaration @property or @property-read value does not follow the grammar
	ErrMalformedPropertyDeclaration = schema.ErrMalformedPropertyDeclaration
	// ErrDuplicateNullMarker type union names NULL twice
	ErrDuplicateNullMarker = schema.ErrDuplicateNullMarker
	// ErrMultipleTypes type union names more than one non-NULL type
	ErrMultipleTypes = schema.ErrMultipleTypes
	// ErrNotEntity class does not derive from the base entity
	ErrNotEntity = schema.ErrNotEntity
)
