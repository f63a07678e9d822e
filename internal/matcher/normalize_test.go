package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmaclean/liftbase/internal/matcher"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Lowercases", in: "Barbell Bench Press", want: "barbell bench press"},
		{name: "TrimsAndCollapsesWhitespace", in: "  squat \t  frontale  ", want: "squat frontale"},
		{name: "StripsPunctuation", in: "push-up (weighted)!", want: "push up weighted"},
		{name: "RemovesEnglishStopWords", in: "Squat with a Barbell", want: "squat barbell"},
		{name: "RemovesItalianStopWords", in: "Squat con Bilanciere", want: "squat bilanciere"},
		{name: "FoldsDiacritics", in: "Élévation latérale", want: "elevation laterale"},
		{name: "KeepsDigits", in: "21s Bicep Curl", want: "21s bicep curl"},
		{name: "Empty", in: "", want: ""},
		{name: "OnlyStopWords", in: "with the", want: ""},
		{name: "OnlyPunctuation", in: "?!...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Barbell Bench Press",
		"  Squat con Bilanciere ",
		"Élévation latérale",
		"push-up (weighted)!",
		"",
		"with the",
	}

	for _, in := range inputs {
		once := matcher.Normalize(in)
		assert.Equal(t, once, matcher.Normalize(once), "input %q", in)
	}
}
