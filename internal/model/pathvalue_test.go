package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPathValue_Equal_IgnoresCaseSeparatorsAndTrailingSlash(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		equal bool
	}{
		{name: "Identical", left: "/usr/bin", right: "/usr/bin", equal: true},
		{name: "MixedCaseAndSeparators", left: "C:/Foo/", right: `c:\foo`, equal: true},
		{name: "SeveralTrailingSeparators", left: `/opt/tool\/\`, right: "/opt/tool", equal: true},
		{name: "SeparatorInTheMiddle", left: `a\b/c`, right: "A/B/C", equal: true},
		{name: "StrictPrefix", left: "/usr/bin", right: "/usr/bin2", equal: false},
		{name: "ShorterOther", left: "/usr/bin/x", right: "/usr/bin", equal: false},
		{name: "DifferentChar", left: "/usr/lib", right: "/usr/bin", equal: false},
		{name: "SeparatorVsLetter", left: "a/b", right: "a_b", equal: false},
		{name: "RootAndEmpty", left: "/", right: "", equal: true},
		{name: "NonASCIICase", left: "/opt/Ünïcode", right: "/OPT/üNÏCODE", equal: true},
		{name: "SharpSIsNotDoubleS", left: "/opt/Straße", right: "/opt/STRASSE", equal: false},
		{name: "LigatureIsNotTwoLetters", left: "C:/ﬁles", right: "c:/FILES", equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := NewPathValue(tt.left), NewPathValue(tt.right)
			assert.Equal(t, tt.equal, l.Equal(r))
			assert.Equal(t, tt.equal, r.Equal(l), "equality must be symmetric")
			assert.Equal(t, tt.equal, l.Key() == r.Key(), "keys must agree with Equal")
		})
	}
}

func TestPathValue_String_KeepsOriginalSpelling(t *testing.T) {
	v := NewPathValue(`C:\Program Files\Tool\`)
	assert.Equal(t, `C:\Program Files\Tool\`, v.String())
}

// TestPathValue_PropertyBased_VariantsAreEqual checks that changing case,
// swapping separators and appending separators never changes identity.
func TestPathValue_PropertyBased_VariantsAreEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9/\\:._ -]{0,24}`).Draw(t, "path")
		suffix := rapid.SampledFrom([]string{"", "/", `\`, `/\/`}).Draw(t, "suffix")
		upper := rapid.Bool().Draw(t, "upper")

		variant := strings.NewReplacer("/", `\`, `\`, "/").Replace(s)
		if upper {
			variant = strings.ToUpper(variant)
		} else {
			variant = strings.ToLower(variant)
		}
		variant += suffix

		assert.True(t, NewPathValue(s).Equal(NewPathValue(variant)), "%q should equal %q", s, variant)
		assert.True(t, NewPathValue(s).Equal(NewPathValue(s)), "%q should equal itself", s)
	})
}
