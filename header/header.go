// Package header provides parsing, manipulation, and rendering of email
// message headers as an ordered collection of fields. Fields that are never
// modified render with their original bytes so a parsed header can round-trip
// byte-for-byte.
package header

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/mailscrub/mailscrub/header/field"
)

// Errors returned by header methods.
var (
	// ErrNoSuchField is returned when the named header field does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned when an operation expecting a single field
	// finds several with the given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrIndexOutOfRange is returned when a field index is out of range.
	ErrIndexOutOfRange = errors.New("header field index is out of range")
)

// Names of the standard fields the scrubber cares about.
const (
	Date           = "Date"
	From           = "From"
	MessageID      = "Message-ID"
	Received       = "Received"
	ReplyTo        = "Reply-To"
	Subject        = "Subject"
	To             = "To"
	UserAgent      = "User-Agent"
	XMailer        = "X-Mailer"
	XOriginatingIP = "X-Originating-IP"
)

// Header is an ordered list of header fields. Duplicate names are permitted
// and order is always preserved. The zero value is an empty header using the
// LF line break.
type Header struct {
	lbr    Break
	fields []*field.Field
}

// init fills in lazy defaults for a zero-value header.
func (h *Header) init() {
	if h.lbr == "" {
		h.lbr = LF
	}
	if h.fields == nil {
		h.fields = make([]*field.Field, 0, 10)
	}
}

// Break returns the line break that separates fields when rendering.
func (h *Header) Break() Break {
	if h.lbr == "" {
		h.lbr = LF
	}
	return h.lbr
}

// SetBreak changes the line break used when rendering.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if the index is out of range.
func (h *Header) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// ListFields returns all fields in order. The returned slice is a copy, but
// the fields themselves are shared.
func (h *Header) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// GetAllFieldsNamed returns every field whose name matches, ignoring case.
func (h *Header) GetAllFieldsNamed(name string) []*field.Field {
	var fs []*field.Field
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// GetIndexesNamed returns the indexes of fields whose name matches, ignoring
// case.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Get retrieves the body of the named field.
//
// If the field is not set, it returns an empty string with ErrNoSuchField. If
// the field occurs more than once, it returns the first body found together
// with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.fields[ixs[0]].Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}
	return b, nil
}

// GetAll retrieves the bodies of every field with the given name. It returns
// nil with ErrNoSuchField if no field matches.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}
	return bs, nil
}

// Set replaces all fields with the given name with a single field holding the
// given body. The first occurrence is modified in place and any others are
// deleted. A field that does not exist yet is appended to the end.
func (h *Header) Set(name, body string) {
	ixs := h.GetIndexesNamed(name)

	if len(ixs) == 0 {
		h.InsertBeforeField(h.Len(), name, body)
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		_ = h.DeleteField(ixs[i])
	}

	f := h.fields[ixs[0]]
	f.SetName(name)
	f.SetBody(body)
}

// InsertBeforeField inserts a new field with the given name and body at index
// n. Indexes out of range are clamped.
func (h *Header) InsertBeforeField(n int, name, body string) {
	h.init()

	if n < 0 {
		n = 0
	}
	if n > len(h.fields) {
		n = len(h.fields)
	}

	f := field.New(name, body)

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = f
}

// DeleteField removes the nth field. It fails with ErrIndexOutOfRange if the
// index is out of range.
func (h *Header) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields = h.fields[:len(h.fields)-1]
	return nil
}

// Bytes renders the header, including the final blank line that terminates
// it. Unmodified fields render with their original bytes.
func (h *Header) Bytes() []byte {
	var buf bytes.Buffer
	lb := h.Break().Bytes()
	for _, f := range h.fields {
		buf.Write(f.Bytes())
		buf.Write(lb)
	}
	buf.Write(lb)
	return buf.Bytes()
}

// String renders the header as a string.
func (h *Header) String() string {
	return string(h.Bytes())
}

// WriteTo writes the rendered header to the given writer.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Bytes())
	return int64(n), err
}
