// Package brand defines the brand record collected by the wizard and the
// store that owns it. Edits arrive as a closed set of typed updates
// (UpdateScalar, UpdateNestedScalar, UpdateListElement); every update yields
// a new record value derived from the previous one, leaving the old value and
// every unaddressed field untouched. Dotted field paths such as
// "targetAudience.demographics" or "values.0" are only accepted at the
// rendering boundary through ParsePath, which maps them onto the typed
// variants.
//
// ContentPillars, LongTermVision, TargetAudience.Interests and
// TargetAudience.PainPoints are carried and serialized but no wizard step
// edits them.
package brand
