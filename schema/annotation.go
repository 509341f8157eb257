package schema

import "errors"

// ClassProperties the properties a class declares in its own doc comment
type ClassProperties struct {
	Class      string
	Properties []*AnnotationProperty
}

func (p *Parser) annotationProperties(class string) (*ClassProperties, error) {
	var (
		props      = newPropertySet()
		normalizer = p.normalizer()
	)

	for _, tag := range p.Reflector.Annotations(class) {
		if tag.Name != PropertyTag && tag.Name != PropertyReadTag {
			continue
		}

		for _, value := range tag.Values {
			declaration, err := ParseDeclaration(tag.Name, value)
			if err != nil {
				var declErr *DeclarationError
				if errors.As(err, &declErr) {
					declErr.Class = class
				}
				return nil, err
			}

			dataType, nullable, err := normalizer.Normalize(declaration.Type, class)
			if err != nil {
				return nil, &DeclarationError{Class: class, Tag: tag.Name, Value: value, Type: declaration.Type, Err: err}
			}

			name := declaration.PropertyName()
			props.set(name, NewAnnotationProperty(
				class,
				name,
				tag.Name == PropertyReadTag,
				dataType,
				declaration.Column,
				nullable,
				declaration.Description,
			))
		}
	}

	own := &ClassProperties{Class: class, Properties: make([]*AnnotationProperty, 0, len(props.order))}
	for _, name := range props.order {
		own.Properties = append(own.Properties, props.byName[name].(*AnnotationProperty))
	}
	return own, nil
}
