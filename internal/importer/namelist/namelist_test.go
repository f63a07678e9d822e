package namelist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmaclean/liftbase/internal/importer/namelist"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Esercizio;Serie;Ripetizioni",
		"Panca Piana;4;8",
		"",
		"Squat con Bilanciere;5;5",
		"   ",
		"Stacco da Terra",
		";3;10",
	}, "\n")

	names, err := namelist.New().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Panca Piana",
		"Squat con Bilanciere",
		"Stacco da Terra",
	}, names)
}

func TestParser_Parse_PlainList(t *testing.T) {
	input := "Deadlift\nOverhead Press\n"

	names, err := namelist.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Deadlift", "Overhead Press"}, names)
}

func TestParser_Parse_Windows1252(t *testing.T) {
	// "Alzate laterali è" with è encoded as Windows-1252 0xE8.
	input := append([]byte("Alzate laterali "), 0xE8, '\n')

	names, err := namelist.New().Parse(strings.NewReader(string(input)))
	require.NoError(t, err)

	require.Len(t, names, 1)
	assert.Equal(t, "Alzate laterali è", names[0])
}

func TestParser_Parse_Empty(t *testing.T) {
	names, err := namelist.New().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, names)
}
