package scrub

import (
	"go.uber.org/zap"

	"github.com/mailscrub/mailscrub/header"
)

// Scrubber applies a resolved rule table to message headers. It is immutable
// after construction and safe to reuse across messages.
type Scrubber struct {
	rules Rules
	log   *zap.Logger
}

// Result reports what one Scrub pass did.
type Result struct {
	Kept       int // fields passed through, matched or not
	Removed    int // fields dropped
	Obfuscated int // fields whose body was rewritten
}

// New builds a Scrubber from the given configuration. A nil logger disables
// logging.
func New(cfg Config, log *zap.Logger) *Scrubber {
	if log == nil {
		log = zap.NewNop()
	}

	return &Scrubber{
		rules: cfg.Rules(),
		log:   log,
	}
}

// Scrub walks the header fields in order and applies the resolved action to
// each. Fields with no matching rule are kept. The relative order of retained
// fields is preserved and duplicates stay separate entries.
//
// An obfuscator that cannot make sense of a field body logs a warning and the
// field is kept unchanged rather than dropped, so data is never lost
// silently. Scrub itself cannot fail.
func (s *Scrubber) Scrub(h *header.Header) Result {
	var res Result

	i := 0
	for i < h.Len() {
		f := h.GetField(i)
		rule, ok := s.rules.Lookup(f.Name())
		if !ok {
			res.Kept++
			i++
			continue
		}

		switch rule.Action {
		case Remove:
			s.log.Debug("removing field",
				zap.String("name", f.Name()))
			_ = h.DeleteField(i)
			res.Removed++

		case Obfuscate:
			body, err := rule.Obfuscate(f.Body())
			if err != nil {
				s.log.Warn("cannot obfuscate field, keeping it unchanged",
					zap.String("name", f.Name()),
					zap.Error(err))
				res.Kept++
				i++
				continue
			}

			if body == f.Body() {
				// already clean, count it as kept
				res.Kept++
				i++
				continue
			}

			s.log.Debug("obfuscating field",
				zap.String("name", f.Name()))
			f.SetBody(body)
			res.Obfuscated++
			i++

		default:
			s.log.Debug("keeping field",
				zap.String("name", f.Name()))
			res.Kept++
			i++
		}
	}

	return res
}
