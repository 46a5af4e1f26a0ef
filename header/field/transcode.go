package field

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Encode transforms a header field body into its wire form. Bodies that need
// no encoding are returned as-is. Anything else is MIME word encoded as
// b-type (Base64) UTF-8.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Decode transforms a header field body from its wire form, decoding any MIME
// encoded words into native unicode. Character sets are resolved through the
// IANA index, which covers pretty much anything found in the wild.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{
		CharsetReader: charsetReader,
	}

	return dec.DecodeHeader(body)
}

// charsetReader decodes bytes in the named character set into UTF-8 for the
// MIME word decoder.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	decoded, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(decoded), nil
}
