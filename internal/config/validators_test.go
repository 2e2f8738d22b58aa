package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		value     string
		def       string
		want      string
	}{
		{"positive int ok", PositiveIntValidator(), "10", "5", "10"},
		{"positive int zero", PositiveIntValidator(), "0", "5", "5"},
		{"positive int empty", PositiveIntValidator(), "", "5", "5"},
		{"non-negative zero", NonNegativeIntValidator(), "0", "3", "0"},
		{"non-negative negative", NonNegativeIntValidator(), "-1", "3", "3"},
		{"enum normalizes case", EnumValidator(map[string]bool{"asc": true, "desc": true}), "DESC", "asc", "desc"},
		{"enum rejects", EnumValidator(map[string]bool{"asc": true}), "up", "asc", "asc"},
		{"bool yes", BoolValidator(), "yes", "false", "true"},
		{"bool off", BoolValidator(), "off", "true", "false"},
		{"bool invalid", BoolValidator(), "perhaps", "true", "true"},
		{"duration ok", DurationValidator(false), "1500ms", "0s", "1.5s"},
		{"duration negative", DurationValidator(false), "-1s", "0s", "0s"},
		{"duration empty allowed", DurationValidator(true), "", "10s", ""},
		{"url ok", URLValidator(), "http://localhost:8080/users", "https://x", "http://localhost:8080/users"},
		{"url bad scheme", URLValidator(), "ftp://example.com/users", "https://x", "https://x"},
		{"url garbage", URLValidator(), "::::", "https://x", "https://x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.validator("key", tt.value, tt.def)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("page_size", PositiveIntValidator())
	})
}

func TestAllowedValuesSorted(t *testing.T) {
	assert.Equal(t, "a, b, c", allowedValues(map[string]bool{"c": true, "a": true, "b": true}))
}
