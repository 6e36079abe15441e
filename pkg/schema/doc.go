/*
Package schema provides a small type system for validating loosely-typed
documents before they are coerced into the strongly-typed model.

A Schema maps field names to Types. Built-in types cover the primitives a
decoded JSON or YAML document can contain (string, int, float, bool), plus
slices, nested objects, enum membership and coordinate pairs. Validation
never stops at the first problem: every failing field is reported, and the
caller receives the full list through FieldErrors.

Basic usage:

	s := schema.Schema{
	    "name":  schema.String(),
	    "level": schema.Int(),
	    "rooms": schema.Slice(schema.Object(nil)),
	}

	if err := schema.Validate(s, data); err != nil {
	    for _, fe := range schema.FieldErrors(err) {
	        // fe.Key, fe.Reason
	    }
	}

The package has no knowledge of the architectural domain; pkg/validate
composes these types into the design-document schema and attaches
JSON-pointer paths to the findings.
*/
package schema
