package schema

import "strings"

const nullMarker = "NULL"

// UnionPolicy picks the effective type of a union without a NULL member
type UnionPolicy func(declared string, members []string) (string, error)

// LenientUnion keeps the first member and ignores the others
func LenientUnion(declared string, members []string) (string, error) {
	return members[0], nil
}

// StrictUnion rejects unions of several non-NULL types
func StrictUnion(declared string, members []string) (string, error) {
	return "", ErrMultipleTypes
}

// TypeNormalizer turns a declared type expression into a DataType
type TypeNormalizer struct {
	Qualifier   Qualifier
	UnionPolicy UnionPolicy
}

// Normalize resolves the declared type text in the naming context of class
func (tn TypeNormalizer) Normalize(declared, class string) (dataType DataType, nullable bool, err error) {
	typ := declared

	if parts := strings.SplitN(declared, "|", 2); len(parts) == 2 {
		switch first, second := isNull(parts[0]), isNull(parts[1]); {
		case first && second:
			return "", false, ErrDuplicateNullMarker
		case first:
			nullable, typ = true, parts[1]
		case second:
			nullable, typ = true, parts[0]
		default:
			policy := tn.UnionPolicy
			if policy == nil {
				policy = LenientUnion
			}
			if typ, err = policy(declared, parts); err != nil {
				return "", false, err
			}
		}
	}

	return tn.Resolve(typ, class), nullable, nil
}

// NormalizeReturn resolves the @return type of an accessor. Accessors never fail
// resolution: unions keep their first member whatever the policy, and a doubled
// NULL leaves the type unresolved.
func (tn TypeNormalizer) NormalizeReturn(declared, class string) (DataType, bool) {
	lenient := TypeNormalizer{Qualifier: tn.Qualifier, UnionPolicy: LenientUnion}
	dataType, nullable, err := lenient.Normalize(declared, class)
	if err != nil {
		return "", false
	}
	return dataType, nullable
}

// Resolve normalizes aliases and qualifies non-native type names
func (tn TypeNormalizer) Resolve(typ, class string) DataType {
	if typ == "" {
		return ""
	}

	dataType := NormalizeAlias(typ)
	if !dataType.IsNative() && tn.Qualifier != nil {
		dataType = DataType(tn.Qualifier.Qualify(string(dataType), class))
	}
	return dataType
}

// NormalizeAlias maps the long spellings of bool and int to the native names
func NormalizeAlias(typ string) DataType {
	switch typ {
	case "boolean":
		return Bool
	case "integer":
		return Int
	}
	return DataType(typ)
}

func isNull(typ string) bool {
	return strings.EqualFold(strings.TrimPrefix(typ, `\`), nullMarker)
}
