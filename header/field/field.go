// Package field provides the low-level representation of a single email
// header field. A Field keeps two views of itself: the decoded name and body
// (Base) and, when the field came from parsed input, the original raw bytes
// (Raw). As long as a field is not modified, rendering it returns the raw
// bytes unchanged, folding and all. Modifying the name or body drops the raw
// view and the field renders in canonical "Name: body" form instead.
package field

import "fmt"

// Base holds the decoded name and body of a header field.
type Base struct {
	name string
	body string
}

// Name returns the field name.
func (f *Base) Name() string {
	return f.name
}

// SetName updates the field name.
func (f *Base) SetName(name string) {
	f.name = name
}

// Body returns the decoded field body.
func (f *Base) Body() string {
	return f.body
}

// SetBody updates the field body.
func (f *Base) SetBody(body string) {
	f.body = body
}

// String renders the field in canonical form. The body is MIME word encoded
// if it contains anything that requires encoding.
func (f *Base) String() string {
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes renders the field in canonical form as a slice of bytes.
func (f *Base) Bytes() []byte {
	return []byte(f.String())
}

// Raw is the immutable original representation of a parsed field.
type Raw struct {
	field []byte // the complete original field, unfolded lines included
	colon int    // index of the colon separating name from body
}

// String returns the original field text.
func (f *Raw) String() string {
	return string(f.field)
}

// Bytes returns the original field bytes.
func (f *Raw) Bytes() []byte {
	return f.field
}

// Name returns the name part of the original bytes. This may differ from the
// decoded name in case only.
func (f *Raw) Name() string {
	return string(f.field[:f.colon])
}

// Body returns the body part of the original bytes, whitespace and encoded
// words intact.
func (f *Raw) Body() string {
	off := 1
	if f.colon == len(f.field) {
		off = 0
	}
	return string(f.field[f.colon+off:])
}

// Field is a single header field. The Name() and Body() methods always
// surface the decoded Base values. String() and Bytes() prefer the Raw view
// when it is present so unmodified fields round-trip exactly.
type Field struct {
	Base
	*Raw
}

// New constructs a field with no original raw value.
func New(name, body string) *Field {
	return &Field{Base{name, body}, nil}
}

// Name returns the decoded field name.
func (f *Field) Name() string {
	return f.Base.Name()
}

// Body returns the decoded field body.
func (f *Field) Body() string {
	return f.Base.Body()
}

// SetName updates the field name and discards the raw view.
func (f *Field) SetName(name string) {
	f.Raw = nil
	f.Base.SetName(name)
}

// SetBody updates the field body and discards the raw view.
func (f *Field) SetBody(body string) {
	f.Raw = nil
	f.Base.SetBody(body)
}

// String renders the raw view when present and the canonical form otherwise.
func (f *Field) String() string {
	if f.Raw != nil {
		return f.Raw.String()
	}
	return f.Base.String()
}

// Bytes renders the raw view when present and the canonical form otherwise.
func (f *Field) Bytes() []byte {
	if f.Raw != nil {
		return f.Raw.Bytes()
	}
	return f.Base.Bytes()
}
