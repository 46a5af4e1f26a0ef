// Package message splits a raw email message into its header and body and
// writes the combination back out. The body is treated as opaque bytes; no
// MIME decoding happens here. A message parsed and written without
// modification comes back byte-for-byte identical.
package message

import (
	"bytes"
	"errors"
	"io"

	"github.com/mailscrub/mailscrub/header"
	"github.com/mailscrub/mailscrub/header/field"
)

// The header/body separators we recognize, in the order we look for them.
var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, possibly never seen in the wild
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

// Message is a parsed email message: an optional preamble of junk found
// before the first header field, the header itself, and the opaque body.
type Message struct {
	// Preamble holds any bytes found before the first header field. These
	// are not part of the header proper, but they are preserved so nothing
	// is lost on output.
	Preamble []byte

	// Header is the parsed message header.
	Header *header.Header

	// Body holds the message body verbatim, or nil if the input contained no
	// header/body separator.
	Body []byte

	// hasBody records whether a separator was found, so that a header-only
	// input does not grow a trailing blank line on output.
	hasBody bool

	// hasFinalBreak records whether a header-only input ended with a line
	// break, so one is not invented on output.
	hasFinalBreak bool
}

// Parse reads a complete message from the given reader and splits it into
// header and body on the first blank line. Input without a blank line is
// treated as a bare header block.
//
// Junk found before the first header field is reported via a
// *field.BadStartError and preserved in the Preamble. The returned message is
// complete and usable; the error is advisory.
func Parse(r io.Reader) (*Message, error) {
	m, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	head, body, hasBody := splitHead(m)
	lb := header.DetectBreak(head)
	hasFinalBreak := hasBody || bytes.HasSuffix(head, lb.Bytes())

	h, err := header.Parse(head, lb)
	if err != nil {
		var badStartErr *field.BadStartError
		if !errors.As(err, &badStartErr) {
			return nil, err
		}

		return &Message{
			Preamble:      badStartErr.BadStart,
			Header:        h,
			Body:          body,
			hasBody:       hasBody,
			hasFinalBreak: hasFinalBreak,
		}, badStartErr
	}

	return &Message{
		Header:        h,
		Body:          body,
		hasBody:       hasBody,
		hasFinalBreak: hasFinalBreak,
	}, nil
}

// splitHead locates the first blank line and splits the input around it. The
// head retains its trailing line break so header parsing sees complete lines.
func splitHead(m []byte) (head, body []byte, found bool) {
	for _, split := range splits {
		if ix := bytes.Index(m, split); ix >= 0 {
			crlf := len(split) / 2
			return m[:ix+crlf], m[ix+len(split):], true
		}
	}
	return m, nil, false
}

// WriteTo writes the message back out: preamble, header, separator blank
// line, and body. When the input had no body, no separator is emitted and the
// output is just the header block.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Write(m.Preamble)

	hb := m.Header.Bytes()
	if !m.hasBody {
		// Header.Bytes always terminates with a blank line. Drop it for
		// header-only messages so round-tripping is exact.
		lb := m.Header.Break().Bytes()
		hb = hb[:len(hb)-len(lb)]
		if !m.hasFinalBreak && bytes.HasSuffix(hb, lb) {
			hb = hb[:len(hb)-len(lb)]
		}
	}
	buf.Write(hb)
	buf.Write(m.Body)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
