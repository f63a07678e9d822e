package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmaclean/liftbase/internal/matcher"
)

func TestPhoneticCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Squat", in: "Squat", want: "S300"},
		{name: "Deadlift", in: "Deadlift", want: "D341"},
		{name: "BenchPress", in: "Bench Press", want: "B521"},
		{name: "Row", in: "Row", want: "R000"},
		{name: "SingleLetter", in: "A", want: "A000"},
		{name: "Empty", in: "", want: ""},
		{name: "DigitsOnly", in: "123", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.PhoneticCode(tt.in))
		})
	}
}

func TestPhoneticCode_SoundAlikes(t *testing.T) {
	// Misspellings that keep the consonant skeleton share a code.
	assert.Equal(t, matcher.PhoneticCode("Squat"), matcher.PhoneticCode("Skwat"))
	assert.Equal(t, matcher.PhoneticCode("Deadlift"), matcher.PhoneticCode("Dedlyft"))

	// The leading letter is kept verbatim, so different initials never collide.
	assert.NotEqual(t, matcher.PhoneticCode("Panca Piana"), matcher.PhoneticCode("Bench Press"))
}
