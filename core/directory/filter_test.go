package directory

import (
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
)

func TestEscapeFilter(t *testing.T) {
	assert.Equal(t, `\28admin\29`, EscapeFilter("(admin)"))
	assert.Equal(t, `MTI\2a`, EscapeFilter("MTI*"))
	assert.Equal(t, `a\5cb`, EscapeFilter(`a\b`))
	assert.Equal(t, "MTI123456", EscapeFilter("MTI123456"))
}

func TestEqualityFilter(t *testing.T) {
	assert.Equal(t, `(employeeID=\2a\29\28cn=\2a)`, EqualityFilter("employeeID", "*)(cn=*"))
}

func TestAnd(t *testing.T) {
	assert.Equal(t, "", And())
	assert.Equal(t, "(a=1)", And("", "(a=1)"))
	assert.Equal(t, "(&(a=1)(b=2))", And("(a=1)", "(b=2)"))
}

func TestFlattenEntry_Lookup(t *testing.T) {
	rec := FlattenEntry(ldap.NewEntry("CN=x", map[string][]string{
		"employeeID":  {"MTI000001"},
		"proxyAddrs":  {"a", "b"},
		"description": {},
	}))

	assert.Equal(t, "CN=x", rec.DN())
	assert.Equal(t, "MTI000001", rec.String("employeeid"))
	assert.Equal(t, "a", rec.String("proxyAddrs"))
	assert.Equal(t, []string{"a", "b"}, rec.Strings("proxyAddrs"))
	assert.Equal(t, []string{"MTI000001"}, rec.Strings("employeeID"))
	assert.Equal(t, "", rec.String("description"))
	assert.Nil(t, rec.Strings("missing"))
}
