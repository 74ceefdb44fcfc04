package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Secret#123", true},
		{"aB3$efgh", true},
		{"aB3$efg", false},
		{"secret#123", false},
		{"SECRET#123", false},
		{"Secret#abc", false},
		{"Secret1234", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, StrongPassword(tt.password))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.False(t, Email("user@"))
	assert.False(t, Email("plain"))
	assert.False(t, Email(""))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"919876543210", true},
		{"98765", false},
		{"98765abcde", false},
		{"+123456789", false},
		{"-123456789", false},
		{"12345.6789", false},
		{"1234567890123456", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.phone))
		})
	}
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("a", "b"))
	assert.False(t, Required("a", "  "))
	assert.True(t, Required())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}
