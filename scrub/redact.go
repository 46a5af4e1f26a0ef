package scrub

import "regexp"

// Placeholder is the fixed token substituted for identifying content. It is
// chosen so that none of the redaction patterns can match it again, which
// keeps redaction idempotent.
const Placeholder = "[REDACTED]"

var (
	// reBracketed matches a bracketed host or address literal, the usual
	// home of IP information in Received fields: [192.168.1.1],
	// [IPv6:2001:db8::1], [mail.example.com].
	reBracketed = regexp.MustCompile(`\[[^\[\]]+\]`)

	// reIPv4 matches a dotted-quad IPv4 literal with each octet in range.
	reIPv4 = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`)

	// reIPv6 matches IPv6 literals either tagged with the IPv6: prefix or
	// containing a double colon. Requiring one of the two keeps timestamps
	// like 12:34:56 from matching. Leading-double-colon forms (::1,
	// ::ffff:10.0.0.1) get their own alternative because \b cannot match
	// between a space and a colon.
	reIPv6 = regexp.MustCompile(`(?i)\bIPv6:[0-9a-f:.]+` +
		`|\b[0-9a-f]{1,4}(?::[0-9a-f]{1,4})*::(?:[0-9a-f]{1,4}(?::[0-9a-f]{1,4}|\.[0-9.]+)*)?` +
		`|::[0-9a-f]{1,4}(?::[0-9a-f]{1,4}|\.[0-9.]+)*\b`)
)

// RedactHosts replaces host and IP information in a Received field body with
// the Placeholder token. Bracketed literals are replaced whole; bare IPv4 and
// IPv6 literals are replaced wherever they appear. Unbracketed hostnames are
// left alone since they carry routing context rather than an exact origin.
//
// The substitution is textual pattern removal, not anonymization in any
// cryptographic sense. It never fails.
func RedactHosts(body string) (string, error) {
	body = reBracketed.ReplaceAllString(body, Placeholder)
	body = reIPv6.ReplaceAllString(body, Placeholder)
	body = reIPv4.ReplaceAllString(body, Placeholder)
	return body, nil
}
