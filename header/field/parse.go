package field

import (
	"bytes"
)

// BadStartError is returned when a header begins with text that does not look
// like a header field. The offending bytes are preserved in the error so the
// caller can decide what to do with them rather than lose data.
type BadStartError struct {
	BadStart []byte // the text found before the first field
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header field"
}

// Line holds the unparsed bytes of one complete header field, folded
// continuation lines included.
type Line []byte

// Lines holds zero or more unparsed header field lines.
type Lines []Line

// ParseLines splits header bytes into one Line per field using the given line
// break. The entire input is treated as header.
//
// This is deliberately more liberal than RFC 5322. A new field starts at any
// line that does not begin with space or tab and contains a colon. Every
// other line is treated as a continuation of the preceding field and is glued
// to it verbatim, so even lines that are technically malformed survive the
// round trip.
//
// If continuation-looking lines appear before the first field, they cannot
// belong to anything. They are collected into a BadStartError and returned
// alongside whatever fields were found.
func ParseLines(m, lb []byte) (Lines, error) {
	lines := make(Lines, 0, len(m)/80)
	var badStart *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}

		if line[0] == ' ' || line[0] == '\t' || !bytes.Contains(line, []byte{':'}) {
			if len(lines) == 0 {
				if badStart != nil {
					badStart.BadStart = append(badStart.BadStart, line...)
				} else {
					badStart = &BadStartError{line}
				}
				continue
			}

			lines[len(lines)-1] = append(lines[len(lines)-1], line...)
			continue
		}

		lines = append(lines, line)
	}

	if badStart != nil {
		return lines, badStart
	}
	return lines, nil
}

// Parse turns one header field line, including any folded continuations, into
// a Field. The raw bytes are retained so the field can be rendered exactly as
// it was read. The decoded body has continuations unfolded, surrounding
// whitespace trimmed, and MIME encoded words decoded when possible. A line
// with no colon at all becomes a field with the whole line as its name and an
// empty body.
func Parse(f Line, lb []byte) *Field {
	raw := bytes.TrimRight(f, string(lb))

	off := 1
	colon := bytes.IndexByte(raw, ':')
	if colon < 0 {
		colon = len(raw)
		off = 0
	}

	name := string(unfold(raw[:colon], lb))
	body := string(bytes.TrimSpace(unfold(raw[colon+off:], lb)))
	if decBody, err := Decode(body); err == nil {
		body = decBody
	}

	return &Field{
		Base: Base{name, body},
		Raw:  &Raw{raw, colon},
	}
}

// unfold joins folded continuation lines into a single line. The line break
// is removed and the leading indent of each continuation collapses into a
// single space.
func unfold(f, lb []byte) []byte {
	uf := make([]byte, 0, len(f))
	for i, line := range bytes.Split(f, lb) {
		line = bytes.TrimLeft(line, " \t")
		if i > 0 && len(line) > 0 {
			uf = append(uf, ' ')
		}
		uf = append(uf, line...)
	}
	return uf
}
