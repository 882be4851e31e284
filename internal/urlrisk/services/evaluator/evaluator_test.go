package evaluator

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

func newTestEvaluator() *Evaluator {
	return New(Options{Logger: log.NewNoopLogger()})
}

func TestEvaluate_InvalidInput(t *testing.T) {
	e := newTestEvaluator()
	for _, in := range []string{"", " ", "\t\n"} {
		res, err := e.Evaluate(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", in)
		assert.Equal(t, domain.EvaluationResult{}, res)
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []domain.RuleID
	}{
		{
			name: "plain https apex is safe",
			url:  "https://google.com/",
			want: []domain.RuleID{},
		},
		{
			name: "www host trips entropy and similarity",
			url:  "https://www.google.com/search?q=cats",
			want: []domain.RuleID{domain.RuleHighEntropy, domain.RuleTyposquatting},
		},
		{
			name: "typosquat with keyword path and suspicious tld",
			url:  "http://paypa1-login.verify-account.tk/update-info",
			want: []domain.RuleID{
				domain.RuleKeywordInPath,
				domain.RuleSuspiciousTLD,
				domain.RuleUnusualCharacters,
				domain.RuleHighEntropy,
				domain.RuleMissingHTTPS,
			},
		},
		{
			name: "ip literal host",
			url:  "http://192.168.1.1/login",
			want: []domain.RuleID{
				domain.RuleKeywordInPath,
				domain.RuleIPLiteral,
				domain.RuleExcessSubdomains,
				domain.RuleMissingHTTPS,
			},
		},
		{
			name: "typosquat only",
			url:  "https://paypa1.com/",
			want: []domain.RuleID{domain.RuleTyposquatting},
		},
		{
			name: "keyword substring inside a segment",
			url:  "http://x.com/relogins",
			want: []domain.RuleID{domain.RuleKeywordInPath, domain.RuleMissingHTTPS},
		},
		{
			name: "uppercase scheme keeps literal https check",
			url:  "HTTPS://google.com/",
			want: []domain.RuleID{domain.RuleMissingHTTPS},
		},
		{
			name: "at sign",
			url:  "https://user@example.com/",
			want: []domain.RuleID{domain.RuleUnusualCharacters},
		},
		{
			name: "similarity exactly at threshold does not fire",
			url:  "https://user@google.com/",
			want: []domain.RuleID{domain.RuleUnusualCharacters},
		},
		{
			name: "two hyphens",
			url:  "https://a-b-c.org/",
			want: []domain.RuleID{domain.RuleUnusualCharacters},
		},
		{
			name: "three dots",
			url:  "https://a.b.c.org/",
			want: []domain.RuleID{domain.RuleExcessSubdomains},
		},
		{
			name: "no scheme degrades to path only",
			url:  "google.com/login",
			want: []domain.RuleID{domain.RuleKeywordInPath, domain.RuleMissingHTTPS},
		},
		{
			name: "tld check is case sensitive",
			url:  "https://evil.TK/",
			want: []domain.RuleID{},
		},
		{
			name: "port hides the tld suffix",
			url:  "https://evil.tk:8443/",
			want: []domain.RuleID{},
		},
		{
			name: "leading space still exposes the host",
			url:  " http://evil.tk/login",
			want: []domain.RuleID{domain.RuleKeywordInPath, domain.RuleSuspiciousTLD, domain.RuleMissingHTTPS},
		},
		{
			name: "leading tab still exposes the host",
			url:  "\thttps://paypa1.com/",
			want: []domain.RuleID{domain.RuleTyposquatting, domain.RuleMissingHTTPS},
		},
		{
			name: "embedded newline is dropped from the host",
			url:  "https://goo\ngle.com/",
			want: []domain.RuleID{},
		},
	}
	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Evaluate(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Rules())
			assert.Equal(t, len(tt.want) > 0, res.Suspicious)
			assert.Equal(t, tt.url, res.URL)
		})
	}
}

func TestEvaluate_LongRandomURL(t *testing.T) {
	url := "https://" + "abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJ" + ".com/" + strings.Repeat("x", 30)
	res, err := newTestEvaluator().Evaluate(url)
	require.NoError(t, err)
	assert.Contains(t, res.Rules(), domain.RuleURLLength)
	assert.Contains(t, res.Rules(), domain.RuleHighEntropy)
}

func TestEvaluate_LengthBoundary(t *testing.T) {
	e := newTestEvaluator()
	base := "https://aa.com/"
	at := base + strings.Repeat("a", 75-len(base))
	over := at + "a"

	res, err := e.Evaluate(at)
	require.NoError(t, err)
	assert.NotContains(t, res.Rules(), domain.RuleURLLength)

	res, err = e.Evaluate(over)
	require.NoError(t, err)
	assert.Contains(t, res.Rules(), domain.RuleURLLength)
}

func TestEvaluate_WarningMessagesInOrder(t *testing.T) {
	res, err := newTestEvaluator().Evaluate("http://192.168.1.1/login")
	require.NoError(t, err)
	assert.Equal(t, []string{
		MsgKeywordInPath,
		MsgIPLiteral,
		MsgExcessSubdomains,
		MsgMissingHTTPS,
	}, res.Messages())
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := newTestEvaluator()
	for _, u := range []string{"https://google.com/", "http://paypa1-login.verify-account.tk/update-info", "::::"} {
		a, errA := e.Evaluate(u)
		b, errB := e.Evaluate(u)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}

func TestEvaluate_SuspiciousMatchesWarnings(t *testing.T) {
	e := newTestEvaluator()
	inputs := []string{"a", "::::", "https://google.com", "http://x", "%%%", "https://", "ftp://evil.tk", "@", "https://[::1]:80/"}
	for _, in := range inputs {
		res, err := e.Evaluate(in)
		require.NoError(t, err, in)
		assert.Equal(t, len(res.Warnings) > 0, res.Suspicious, in)
	}
}

func TestEvaluate_ConcurrentUse(t *testing.T) {
	e := newTestEvaluator()
	want, err := e.Evaluate("http://paypa1-login.verify-account.tk/update-info")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := e.Evaluate("http://paypa1-login.verify-account.tk/update-info")
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestNew_CustomListsAndTunables(t *testing.T) {
	lists, err := domain.NewReferenceLists([]string{"wallet"}, []string{".zip"}, []string{"example.zip"})
	require.NoError(t, err)
	tunables := domain.DefaultTunables()
	tunables.CaseInsensitiveHTTPS = true
	tunables.EntropyThreshold = 10

	e := New(Options{Lists: &lists, Tunables: &tunables, Logger: log.NewNoopLogger()})

	res, err := e.Evaluate("HTTPS://examp1e.zip/wallet")
	require.NoError(t, err)
	assert.Equal(t, []domain.RuleID{
		domain.RuleKeywordInPath,
		domain.RuleSuspiciousTLD,
		domain.RuleTyposquatting,
	}, res.Rules())

	res, err = e.Evaluate("https://evil.tk/login")
	require.NoError(t, err)
	assert.False(t, res.Suspicious, "default lists must not leak into a custom evaluator")
}

func TestNew_CustomRuleTable(t *testing.T) {
	always := NewRule("always", "always fires", func(domain.ParsedURL, domain.RawURL) bool { return true })
	e := New(Options{Rules: []Rule{always, IPLiteralRule()}, Logger: log.NewNoopLogger()})

	assert.Equal(t, []domain.RuleID{"always", domain.RuleIPLiteral}, e.RuleIDs())

	res, err := e.Evaluate("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"always fires"}, res.Messages())
}

func TestNew_DefaultRuleOrder(t *testing.T) {
	assert.Equal(t, []domain.RuleID{
		domain.RuleKeywordInPath,
		domain.RuleSuspiciousTLD,
		domain.RuleIPLiteral,
		domain.RuleUnusualCharacters,
		domain.RuleExcessSubdomains,
		domain.RuleURLLength,
		domain.RuleHighEntropy,
		domain.RuleTyposquatting,
		domain.RuleMissingHTTPS,
	}, newTestEvaluator().RuleIDs())
}
