package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmaclean/liftbase/internal/matcher"
)

func TestAliasTable_CanonicalOf(t *testing.T) {
	table := matcher.NewAliasTable()

	tests := []struct {
		name    string
		in      string
		want    string
		wantHit bool
	}{
		{name: "CanonicalItself", in: "bench press", want: "bench press", wantHit: true},
		{name: "ItalianSynonym", in: "Panca Piana", want: "bench press", wantHit: true},
		{name: "SynonymWithStopWords", in: "distensioni su panca", want: "bench press", wantHit: true},
		{name: "CaseInsensitive", in: "STACCO DA TERRA", want: "deadlift", wantHit: true},
		{name: "Unknown", in: "underwater basket weaving", wantHit: false},
		{name: "Empty", in: "", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.CanonicalOf(tt.in)
			assert.Equal(t, tt.wantHit, ok)

			if tt.wantHit {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAliasTable_SynonymsShareKey(t *testing.T) {
	table := matcher.NewAliasTable()

	a, okA := table.CanonicalOf("Bench Press")
	b, okB := table.CanonicalOf("panca piana")

	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)
}
