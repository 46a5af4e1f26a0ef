// Package scrub implements the header sanitizer: an immutable rule table
// mapping field names to actions and a Scrubber that applies the resolved
// action to every field of a header in a single ordered pass.
package scrub

// Action is what the scrubber does with a header field that matches a rule.
type Action int

const (
	// Keep passes the field through untouched.
	Keep Action = iota

	// Remove drops the field from the header entirely.
	Remove

	// Obfuscate keeps the field but rewrites identifying parts of its body.
	Obfuscate
)

// String returns the name of the action.
func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Remove:
		return "remove"
	case Obfuscate:
		return "obfuscate"
	}
	return "unknown"
}
