package header

import (
	"errors"

	"github.com/mailscrub/mailscrub/header/field"
)

// Parse parses the given bytes into a Header using the given line break. The
// whole input is treated as header.
//
// Junk lines found before the first field are reported via a
// *field.BadStartError. The error is recoverable: the returned header is
// still complete and usable, and the skipped bytes are preserved inside the
// error for the caller to deal with.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	return &Header{
		lbr:    lb,
		fields: fields,
	}, finalErr
}
