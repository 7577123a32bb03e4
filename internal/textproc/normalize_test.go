package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDropsStopWordsAndShortTokens(t *testing.T) {
	in := "El estudiante de la universidad es un experto en Python y SQL"
	// "el", "de", "la", "es", "un", "en", "y" are stop-words or too short;
	// "sql" survives, "python" survives.
	assert.Equal(t, "estudiante universidad experto python sql", Normalize(in))
}

func TestNormalizeKeepsAccentedLetters(t *testing.T) {
	assert.Equal(t, "enseñanza estadística análisis", Normalize("Enseñanza, ESTADÍSTICA; análisis."))
}

func TestNormalizeStripsDigitsAndPunctuation(t *testing.T) {
	assert.Equal(t, "promedio superior", Normalize("Promedio superior a 4.0!!!"))
}

func TestNormalizeEmptyAndNoiseOnly(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("12345 -- !! el de la y"))
}

func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{
		"Buscamos estudiante para monitoría de Análisis de Datos",
		"Dominio de Python (Pandas, NumPy, Matplotlib)",
		"Experiencia previa en enseñanza, tutorías o monitorías",
		"",
		"1234 !!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be a no-op on its own output: %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"experiencia", "docencia"}, Tokens("experiencia en docencia"))
	assert.Nil(t, Tokens("el y de"))
}
