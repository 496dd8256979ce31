package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCuponID(t *testing.T) {
	for i := 0; i < 100; i++ {
		var id = GenerateCuponID()

		match, err := regexp.MatchString(`^c[A-Z]{6}[0-9]{3}$`, id)
		assert.Nil(t, err, "Failed: %v", id)
		assert.True(t, match, "Failed: %v", id)
	}
}

func TestGenerateEmpresaID(t *testing.T) {
	for i := 0; i < 100; i++ {
		var id = GenerateEmpresaID()

		match, err := regexp.MatchString(`^b[A-Z]{6}[0-9]{3}$`, id)
		assert.Nil(t, err, "Failed: %v", id)
		assert.True(t, match, "Failed: %v", id)
	}
}

func TestGenerateCodigoCanje(t *testing.T) {
	for i := 0; i < 100; i++ {
		var codigo = GenerateCodigoCanje()

		match, err := regexp.MatchString(`^[0-9]{8}$`, codigo)
		assert.Nil(t, err, "Failed: %v", codigo)
		assert.True(t, match, "Failed: %v", codigo)
	}
}

func TestGenerateNotificationID(t *testing.T) {
	for i := 0; i < 100; i++ {
		var id = GenerateNotificationID()

		match, err := regexp.MatchString(`^n[a-z]{10}$`, id)
		assert.Nil(t, err, "Failed: %v", id)
		assert.True(t, match, "Failed: %v", id)
	}
}

func TestToday(t *testing.T) {
	match, err := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, Today())
	assert.Nil(t, err)
	assert.True(t, match)
}
