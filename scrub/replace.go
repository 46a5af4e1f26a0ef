package scrub

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/zostay/go-addr/pkg/addr"
)

// PlaceholderDomain is the domain used for rewritten addresses and message
// IDs. The .invalid TLD is reserved and can never resolve. Values already
// under this domain are recognized as scrubbed and pass through unchanged,
// which keeps a second scrub from rewriting them again.
const PlaceholderDomain = "redacted.invalid"

// messageIDSpace is the fixed UUIDv5 namespace for rewritten message IDs, so
// the same input always produces the same replacement.
var messageIDSpace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// AnonymizeMessageID replaces a Message-ID body with a deterministic UUID
// under the placeholder domain. The UUID is derived from the original value,
// so re-running the tool over the same input produces the same output, and
// already-scrubbed IDs are returned unchanged.
func AnonymizeMessageID(body string) (string, error) {
	if strings.Contains(body, "@"+PlaceholderDomain) {
		return body, nil
	}

	id := uuid.NewSHA1(messageIDSpace, []byte(body))
	return fmt.Sprintf("<%s@%s>", id, PlaceholderDomain), nil
}

// ParseTime parses a date field body, trying the RFC 5322 format first and
// falling back to lenient parsing of the many formats seen in the wild.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// AnonymizeDate coarsens a Date body to midnight UTC of the same day,
// removing the exact send time and the sender's timezone while keeping the
// date usable for sorting. Truncating an already-truncated date is a no-op.
//
// It fails when the body cannot be parsed as a date at all, in which case the
// scrubber keeps the original.
func AnonymizeDate(body string) (string, error) {
	t, err := ParseTime(body)
	if err != nil {
		return "", err
	}

	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.Format(time.RFC1123Z), nil
}

// AnonymizeAddressList replaces every mailbox in an address field body with a
// numbered placeholder under the placeholder domain. The number of mailboxes
// is preserved so a message to three recipients still shows three recipients;
// display names and comments are dropped.
//
// A body that cannot be parsed as an address list at all collapses to a
// single placeholder mailbox rather than surviving untouched.
func AnonymizeAddressList(body string) (string, error) {
	n := 1
	if al, err := addr.ParseEmailAddressList(body); err == nil && len(al) > 0 {
		n = len(al)
	}

	mbs := make([]string, n)
	for i := range mbs {
		mbs[i] = fmt.Sprintf("redacted-%d@%s", i+1, PlaceholderDomain)
	}
	return strings.Join(mbs, ", "), nil
}
