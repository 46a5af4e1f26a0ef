package header

import "bytes"

// Break represents the line break used to separate the fields of a header.
type Break string

// Constants for the line breaks seen in email headers. When generating a new
// header from scratch and in doubt, use CRLF.
const (
	CRLF Break = "\x0d\x0a" // \r\n - network linebreak
	LF   Break = "\x0a"     // \n - Unix linebreak
	CR   Break = "\x0d"     // \r - old Mac linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// DetectBreak guesses the line break used by the given header bytes by
// finding the first line-ending sequence present. It returns LF when the
// input contains no line break at all.
func DetectBreak(m []byte) Break {
	crlf := bytes.Index(m, CRLF.Bytes())
	lfcr := bytes.Index(m, LFCR.Bytes())
	lf := bytes.IndexByte(m, '\x0a')
	cr := bytes.IndexByte(m, '\x0d')

	switch {
	case crlf >= 0 && crlf == cr && crlf+1 == lf:
		return CRLF
	case lfcr >= 0 && lfcr == lf && lfcr+1 == cr:
		return LFCR
	case lf >= 0 && (cr < 0 || lf < cr):
		return LF
	case cr >= 0:
		return CR
	}
	return LF
}
