package validators_test

import (
	"testing"

	"crm-service/validators"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPhoneIsValid(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"", true}, // optional
		{"123-456-7890", true},
		{"(123)456-7890", true},
		{"123.456.7890", true},
		{"+1-234-567-8901", true},
		{"+44-123-456-7890", true},
		// The country code consumes 1-3 digits, then exactly ten more are
		// required, so a bare +1234567890 never fits the pattern.
		{"+1234567890", false},
		{"12345", false},
		{"abc-def-ghij", false},
		{"123-456-789", false},
		{"++1234567890", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, validators.PhoneIsValid(c.phone), "phone %q", c.phone)
	}
}

func TestEmailLooksValid(t *testing.T) {
	assert.True(t, validators.EmailLooksValid("alice@example.com"))
	assert.False(t, validators.EmailLooksValid("alice.example.com"))
	assert.False(t, validators.EmailLooksValid(""))
}

func TestNameIsPresent(t *testing.T) {
	assert.True(t, validators.NameIsPresent("Alice"))
	assert.False(t, validators.NameIsPresent("   "))
	assert.False(t, validators.NameIsPresent(""))
}

func TestPriceIsValid(t *testing.T) {
	assert.True(t, validators.PriceIsValid(decimal.RequireFromString("0.01")))
	assert.False(t, validators.PriceIsValid(decimal.Zero))
	assert.False(t, validators.PriceIsValid(decimal.RequireFromString("-10")))
}

func TestStockIsValid(t *testing.T) {
	zero, neg := 0, -1
	assert.True(t, validators.StockIsValid(nil))
	assert.True(t, validators.StockIsValid(&zero))
	assert.False(t, validators.StockIsValid(&neg))
}

func TestDedupIDs(t *testing.T) {
	assert.Equal(t, []uint{10, 11}, validators.DedupIDs([]uint{10, 10, 11, 10}))
	assert.Equal(t, []uint{5}, validators.DedupIDs([]uint{5}))
	assert.Empty(t, validators.DedupIDs(nil))
}

func TestMissingIDs(t *testing.T) {
	assert.Equal(t, []uint{99}, validators.MissingIDs([]uint{10, 99}, []uint{10}))
	assert.Nil(t, validators.MissingIDs([]uint{10, 11}, []uint{11, 10}))
	assert.Equal(t, []uint{1, 2}, validators.MissingIDs([]uint{1, 2}, nil))
}
