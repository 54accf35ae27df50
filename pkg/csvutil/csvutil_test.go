package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var leadFields = []string{"full_name", "email", "phone", "location"}

func TestParse(t *testing.T) {
	csvText := "full_name,email,phone,location\n" +
		"Ana García,ana@example.com,600111222,Madrid\n" +
		"Luis Pérez,luis@example.com,600333444,Sevilla\n"

	rows, err := Parse(csvText)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Ana García", rows[0]["full_name"])
	assert.Equal(t, "Sevilla", rows[1]["location"])
}

func TestParseTrimsWhitespace(t *testing.T) {
	rows, err := Parse("full_name, email\n Ana , ana@example.com \n")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", rows[0]["full_name"])
	assert.Equal(t, "ana@example.com", rows[0]["email"])
}

func TestParsePadsShortRows(t *testing.T) {
	rows, err := Parse("full_name,email,phone\nAna,ana@example.com\n")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["phone"])
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse("")
	assert.NoError(t, err)
	assert.Nil(t, rows)
}

func TestValidateOK(t *testing.T) {
	rows, _ := Parse("full_name,email,phone,location\nAna,ana@example.com,600111222,Madrid\n")
	result := Validate(rows, leadFields)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateMissingColumn(t *testing.T) {
	rows, _ := Parse("full_name,email\nAna,ana@example.com\n")
	result := Validate(rows, leadFields)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "faltan campos requeridos: phone, location")
}

func TestValidateEmptyCell(t *testing.T) {
	rows, _ := Parse("full_name,email,phone,location\nAna,,600111222,Madrid\nLuis,luis@example.com,,\n")
	result := Validate(rows, leadFields)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "fila 1: el campo 'email' está vacío")
	assert.Contains(t, result.Errors, "fila 2: el campo 'phone' está vacío")
	assert.Contains(t, result.Errors, "fila 2: el campo 'location' está vacío")
}

func TestValidateNoRows(t *testing.T) {
	result := Validate(nil, leadFields)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "el archivo CSV no contiene datos")
}
