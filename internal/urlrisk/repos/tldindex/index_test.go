package tldindex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex/bloom"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

func newDefaultIndex() *tldindex.Index {
	return tldindex.New(domain.DefaultReferenceLists(), bloom.NewFactory(), 0.01)
}

func TestIndex_HasSuspiciousSuffix(t *testing.T) {
	idx := newDefaultIndex()
	tests := []struct {
		authority string
		want      bool
	}{
		{"evil.tk", true},
		{"paypa1-login.verify-account.tk", true},
		{"a.b.c.website", true},
		{"user@paypal.com.evil.xyz", true},
		{".tk", true},
		{"evil.tk.com", false},
		{"evil.TK", false},
		{"evil.tk:8443", false},
		{"example.com", false},
		{"tk", false},
		{"", false},
		{"trailing.", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.HasSuspiciousSuffix(tt.authority), tt.authority)
	}
}

// The index must agree with a plain HasSuffix scan for every input.
func TestIndex_AgreesWithLinearScan(t *testing.T) {
	lists := domain.DefaultReferenceLists()
	idx := newDefaultIndex()
	linear := evaluator.NewLinearSuffixMatcher(lists)

	inputs := []string{"a.info", "x.information", "y.co.uk", "shop.online", "online", "a..tk", "q.top.", "1.2.3.4", "click.click"}
	for _, tld := range lists.SuspiciousTLDs() {
		inputs = append(inputs, "host"+tld, "host"+tld+".com", strings.ToUpper("host"+tld))
	}
	for _, in := range inputs {
		assert.Equal(t, linear.HasSuspiciousSuffix(in), idx.HasSuspiciousSuffix(in), in)
	}
}

func TestIndex_MultiLabelEntries(t *testing.T) {
	lists, err := domain.NewReferenceLists(nil, []string{".co.uk", ".zip"}, nil)
	require.NoError(t, err)
	idx := tldindex.New(lists, bloom.NewFactory(), 0.01)

	assert.True(t, idx.HasSuspiciousSuffix("shop.example.co.uk"))
	assert.True(t, idx.HasSuspiciousSuffix("x.zip"))
	assert.False(t, idx.HasSuspiciousSuffix("example.uk"))
}

func TestIndex_Stats(t *testing.T) {
	idx := newDefaultIndex()
	assert.False(t, idx.HasSuspiciousSuffix("www.example.com"))

	st := idx.Stats()
	assert.Equal(t, 35, st.Entries)
	assert.Equal(t, uint64(2), st.Probes, "one probe per dot-anchored suffix")
	assert.LessOrEqual(t, st.BloomNegatives, st.Probes)
}

func TestIndex_AsEvaluatorMatcher(t *testing.T) {
	e := evaluator.New(evaluator.Options{TLDs: newDefaultIndex()})
	res, err := e.Evaluate("http://paypa1-login.verify-account.tk/update-info")
	require.NoError(t, err)
	assert.Contains(t, res.Rules(), domain.RuleSuspiciousTLD)
}
