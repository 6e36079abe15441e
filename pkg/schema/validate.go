package schema

import "sort"

// Schema is a map of field names to their expected types.
// Example: {"name": String(), "level": Int(), "rooms": Slice(Object(nil))}
type Schema map[string]Type

// Validate checks if data conforms to the schema.
// Returns an error collecting every validation failure found, never just
// the first. Fields wrapped in Optional may be absent.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []*FieldError

	// Deterministic field order so diagnostic lists are reproducible.
	fields := make([]string, 0, len(schema))
	for name := range schema {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, fieldName := range fields {
		fieldType := schema[fieldName]
		value, exists := data[fieldName]
		if !exists {
			if _, optional := fieldType.(*OptionalType); optional {
				continue
			}
			errs = append(errs, &FieldError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &FieldError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
