package scrub_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailscrub/mailscrub/header"
	"github.com/mailscrub/mailscrub/scrub"
)

const sampleHeader = "X-Mailer: Thunderbird 91.0\n" +
	"Received: from mail.example.com ([192.168.1.1])\n" +
	"Subject: Hi\n"

func parseHeader(t *testing.T, raw string) *header.Header {
	t.Helper()
	h, err := header.Parse([]byte(raw), header.LF)
	require.NoError(t, err)
	return h
}

func TestScrubDefaults(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, sampleHeader)
	res := scrub.New(scrub.Config{}, nil).Scrub(h)

	assert.Equal(t, scrub.Result{Kept: 1, Removed: 2}, res)
	assert.Equal(t, "Subject: Hi\n\n", h.String())
}

func TestScrubFlagOverrides(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, sampleHeader)
	cfg := scrub.Config{KeepXMailer: true, ObfuscateReceived: true}
	res := scrub.New(cfg, nil).Scrub(h)

	assert.Equal(t, scrub.Result{Kept: 2, Obfuscated: 1}, res)
	assert.Equal(t,
		"X-Mailer: Thunderbird 91.0\n"+
			"Received: from mail.example.com ([REDACTED])\n"+
			"Subject: Hi\n\n",
		h.String())
}

func TestScrubNeverGrows(t *testing.T) {
	t.Parallel()

	raw := "Received: from a ([10.0.0.1])\n" +
		"Received: from b ([10.0.0.2])\n" +
		"X-Mailer: mutt\n" +
		"User-Agent: Mutt/2.2.9\n" +
		"X-Originating-IP: [203.0.113.7]\n" +
		"Subject: Hi\n"

	for _, cfg := range []scrub.Config{
		{},
		{KeepXMailer: true},
		{ObfuscateReceived: true},
		{KeepXMailer: true, ObfuscateReceived: true},
	} {
		h := parseHeader(t, raw)
		before := h.Len()
		scrub.New(cfg, nil).Scrub(h)
		assert.LessOrEqual(t, h.Len(), before)
	}
}

func TestScrubIdempotent(t *testing.T) {
	t.Parallel()

	raw := "Received: from mail.example.com ([192.168.1.1])\n" +
		"\tby mx.example.net with ESMTP id u7si8\n" +
		"From: John Doe <jdoe@machine.example>\n" +
		"To: Mary Smith <mary@x.test>, jdoe@example.org\n" +
		"Reply-To: noreply@machine.example\n" +
		"Message-ID: <1234.5678@machine.example>\n" +
		"Date: Fri, 21 Nov 1997 09:55:06 -0600\n" +
		"Subject: Hi\n" +
		"X-Mailer: Thunderbird 91.0\n"

	for _, cfg := range []scrub.Config{
		{},
		{KeepXMailer: true, ObfuscateReceived: true},
	} {
		s := scrub.New(cfg, nil)

		h := parseHeader(t, raw)
		s.Scrub(h)
		once := h.String()

		h2 := parseHeader(t, once)
		s.Scrub(h2)
		assert.Equal(t, once, h2.String())
	}
}

func TestScrubKeepXMailerUnchanged(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, sampleHeader)
	scrub.New(scrub.Config{KeepXMailer: true}, nil).Scrub(h)

	b, err := h.Get(header.XMailer)
	assert.NoError(t, err)
	assert.Equal(t, "Thunderbird 91.0", b)
	// untouched fields render their original bytes
	assert.Equal(t, "X-Mailer: Thunderbird 91.0", h.GetField(0).String())
}

func TestScrubObfuscateReceivedStripsIPs(t *testing.T) {
	t.Parallel()

	raw := "Received: from a.example.com (a.example.com [10.20.30.40])\n" +
		"\tby mx.example.net (Postfix) with ESMTPS id ABC123\n" +
		"Received: from [172.16.0.9] (helo=b)\n" +
		"Received: from c ([IPv6:2001:db8::42])\n" +
		"Subject: Hi\n"

	h := parseHeader(t, raw)
	scrub.New(scrub.Config{ObfuscateReceived: true}, nil).Scrub(h)

	ip := regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}\b|2001:db8`)
	bs, err := h.GetAll(header.Received)
	require.NoError(t, err)
	require.Len(t, bs, 3)
	for _, b := range bs {
		assert.NotRegexp(t, ip, b)
	}
}

func TestScrubUnknownFieldsUntouched(t *testing.T) {
	t.Parallel()

	raw := "X-Spam-Status: No, score=-2.9\n" +
		"List-Unsubscribe: <mailto:leave@lists.example.com>\n" +
		"Precedence: bulk\n"

	for _, cfg := range []scrub.Config{
		{},
		{KeepXMailer: true, ObfuscateReceived: true},
	} {
		h := parseHeader(t, raw)
		res := scrub.New(cfg, nil).Scrub(h)
		assert.Equal(t, scrub.Result{Kept: 3}, res)
		assert.Equal(t, raw+"\n", h.String())
	}
}

func TestScrubKeepsUnparseableDate(t *testing.T) {
	t.Parallel()

	h := parseHeader(t, "Date: sometime last week\nSubject: Hi\n")
	res := scrub.New(scrub.Config{}, nil).Scrub(h)

	// the warning path keeps the field rather than dropping it
	assert.Equal(t, scrub.Result{Kept: 2}, res)
	b, err := h.Get(header.Date)
	assert.NoError(t, err)
	assert.Equal(t, "sometime last week", b)
}

func TestScrubAlreadyCleanCountsAsKept(t *testing.T) {
	t.Parallel()

	raw := "Message-ID: <00000000-0000-0000-0000-000000000000@redacted.invalid>\n"
	h := parseHeader(t, raw)
	res := scrub.New(scrub.Config{}, nil).Scrub(h)

	assert.Equal(t, scrub.Result{Kept: 1}, res)
	assert.Equal(t, raw+"\n", h.String())
}

func TestScrubDuplicatesPreserved(t *testing.T) {
	t.Parallel()

	raw := "Comments: one\nComments: two\nComments: one\n"
	h := parseHeader(t, raw)
	scrub.New(scrub.Config{}, nil).Scrub(h)

	// no deduplication, no reordering
	assert.Equal(t, raw+"\n", h.String())
}
