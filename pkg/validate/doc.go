/*
Package validate implements the three-stage validation pipeline that turns a
raw design document into a typed domain.DesignSpec.

Stage 1 (structural) checks the decoded key/value document against the
declared schema: required fields, primitive types, enum membership. A
document that cannot even be parsed into key/value form is a fatal
SchemaError and short-circuits the remaining stages.

Stage 2 (model) constructs the strongly-typed model. Field coercion
failures and range-constraint violations are reported per field without
aborting sibling fields.

Stage 3 (geometric-semantic) runs over the successfully modeled entities:
closed rings, vertex counts, zero-length edges, opening indices, opening
widths against computed edge lengths, and pairwise opening-span overlap.

No stage fails fast within itself. The pipeline always returns the complete
diagnostic list; callers decide which findings are fatal for their purpose.
The drawing generator refuses to run with any geometry diagnostic present,
while a read-only validation call just reports.
*/
package validate
