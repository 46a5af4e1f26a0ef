package scrub

import (
	"strings"

	"github.com/mailscrub/mailscrub/header"
)

// ObfuscateFunc rewrites a field body, replacing identifying parts. It
// returns the rewritten body or an error when the body cannot be understood
// well enough to rewrite, in which case the scrubber keeps the field as-is.
type ObfuscateFunc func(body string) (string, error)

// Rule is the resolved treatment for one field name.
type Rule struct {
	Action    Action
	Obfuscate ObfuscateFunc // required when Action is Obfuscate
}

// Rules maps lower-cased field names to their rule. Field names not present
// default to Keep: unknown fields are not assumed sensitive.
type Rules map[string]Rule

// Config holds the flag overrides applied on top of the default rule table.
// It is resolved once into a Rules map and not consulted again.
type Config struct {
	// KeepXMailer passes X-Mailer through instead of removing it.
	KeepXMailer bool

	// ObfuscateReceived redacts host and IP information inside Received
	// fields instead of removing them.
	ObfuscateReceived bool
}

// DefaultRules returns the built-in rule table.
//
// Received and X-Mailer are removed outright, as are the other fields that
// name the sending software or its address. Fields whose structure is worth
// keeping have their identifying content rewritten deterministically instead.
func DefaultRules() Rules {
	return Rules{
		key(header.Received):       {Action: Remove},
		key(header.XMailer):        {Action: Remove},
		key(header.UserAgent):      {Action: Remove},
		key(header.XOriginatingIP): {Action: Remove},
		key(header.MessageID):      {Action: Obfuscate, Obfuscate: AnonymizeMessageID},
		key(header.Date):           {Action: Obfuscate, Obfuscate: AnonymizeDate},
		key(header.From):           {Action: Obfuscate, Obfuscate: AnonymizeAddressList},
		key(header.To):             {Action: Obfuscate, Obfuscate: AnonymizeAddressList},
		key(header.ReplyTo):        {Action: Obfuscate, Obfuscate: AnonymizeAddressList},
	}
}

// Rules resolves the configuration into the final rule table. Exactly one
// action resolves per field name once the overrides are applied.
func (c Config) Rules() Rules {
	rules := DefaultRules()

	if c.KeepXMailer {
		rules[key(header.XMailer)] = Rule{Action: Keep}
	}
	if c.ObfuscateReceived {
		rules[key(header.Received)] = Rule{Action: Obfuscate, Obfuscate: RedactHosts}
	}

	return rules
}

// Lookup finds the rule for a field name, ignoring case. The second return
// is false when no rule matches and the field should be kept.
func (r Rules) Lookup(name string) (Rule, bool) {
	rule, ok := r[key(name)]
	return rule, ok
}

// key normalizes a field name into its rule-table form.
func key(name string) string {
	return strings.ToLower(name)
}
