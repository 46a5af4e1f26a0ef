// Package mailscrub strips and rewrites identifying fields in email headers.
//
// The library is split according to the part of the problem each package
// handles. The header/field package deals with single header fields and keeps
// both the decoded logical value and the original raw bytes of each field, so
// that fields which are never touched can be written back out byte-for-byte
// identical to the input. The header package collects fields into an ordered
// header and handles parsing and rendering of the header as a whole. The
// message package splits a raw message into its header and body on the first
// blank line and writes the combination back out. The scrub package holds the
// sanitizer itself: a fixed rule table mapping field names to actions, the
// Received-value redactor, and the deterministic replacement generators used
// for Message-ID, Date and address fields.
//
// Round-tripping is a design goal. A message that is parsed and written
// without modification comes back byte-for-byte identical, including folded
// continuation lines and junk found before the first field. Sanitizing is
// idempotent: running the scrubber over its own output changes nothing.
//
// The mailscrub command under cmd/mailscrub wires the library up as a filter
// reading a message from a file or standard input and writing the sanitized
// message to a file or standard output.
package mailscrub
