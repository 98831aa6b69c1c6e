// Package path represents a location of a field inside a nested, schema
// described record as an ordered sequence of steps.
//
// A step is an arbitrary byte string and is never interpreted: it may
// contain '.', '(', ')', or quotes, and need not be valid UTF-8.
//
// [Path.String] renders a path as a single human readable token and
// [Parse] inverts it exactly.  Steps that look like conventional
// identifiers, or like proto extension names of the form (name.name),
// pass through untouched; every other step is wrapped in single quotes
// with internal quotes doubled:
//
//	{foo, bar, baz}       ->  foo.bar.baz
//	{foo, (foo.bar)}      ->  foo.(foo.bar)
//	{foo, ((c), Marty's}  ->  foo.'((c)'.'Marty''s'
//
// The encoding is injective: distinct paths always render to distinct
// strings, so rendered paths are safe as keys in textual artifacts.
package path
