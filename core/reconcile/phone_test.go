package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "local with dashes", raw: "0812-345-6789", want: "628123456789", wantOK: true},
		{name: "international with spaces", raw: "+62812 345 6789", want: "628123456789", wantOK: true},
		{name: "country code without plus", raw: "6281234567890", want: "6281234567890", wantOK: true},
		{name: "country code with trunk zero", raw: "+62 0812 345 6789", want: "628123456789", wantOK: true},
		{name: "twelve digit local", raw: "081234567890", want: "6281234567890", wantOK: true},
		{name: "too short", raw: "0812345", wantOK: false},
		{name: "too long", raw: "0812345678901234", wantOK: false},
		{name: "foreign prefix", raw: "+1 415 555 0100", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
		{name: "letters only", raw: "n/a", wantOK: false},
		{name: "plus in the middle", raw: "0812+3456789", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_RoundTrip(t *testing.T) {
	a, okA := NormalizePhone("0812-345-6789")
	b, okB := NormalizePhone("+62812 345 6789")

	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)

	again, ok := NormalizePhone(a)
	assert.True(t, ok)
	assert.Equal(t, a, again)
}

func TestValidEmployeeID(t *testing.T) {
	assert.True(t, ValidEmployeeID("MTI123456"))
	assert.False(t, ValidEmployeeID("MTI12345"))
	assert.False(t, ValidEmployeeID("MTI1234567"))
	assert.False(t, ValidEmployeeID("mti123456"))
	assert.False(t, ValidEmployeeID(" MTI123456"))
	assert.False(t, ValidEmployeeID(""))
}
