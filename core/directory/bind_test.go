package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindName(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "Principal name from base DN",
			cfg:  Config{BindUser: "svc-sync", AuthFormat: AuthPrincipalName, BaseDN: "OU=Staff,DC=corp,DC=example"},
			want: "svc-sync@corp.example",
		},
		{
			name: "Principal name with explicit domain",
			cfg:  Config{BindUser: "svc-sync", AuthFormat: AuthPrincipalName, Domain: "example.co.id", BaseDN: "DC=corp"},
			want: "svc-sync@example.co.id",
		},
		{
			name: "Principal name already qualified",
			cfg:  Config{BindUser: "svc-sync@other.example", AuthFormat: AuthPrincipalName, BaseDN: "DC=corp"},
			want: "svc-sync@other.example",
		},
		{
			name: "Distinguished name under base",
			cfg:  Config{BindUser: "svc-sync", AuthFormat: AuthDistinguishedName, BaseDN: "OU=Staff,DC=corp"},
			want: "CN=svc-sync,OU=Staff,DC=corp",
		},
		{
			name: "Distinguished name under bind container",
			cfg:  Config{BindUser: "svc-sync", AuthFormat: AuthDistinguishedName, BaseDN: "OU=Staff,DC=corp", BindContainer: "OU=Service,DC=corp"},
			want: "CN=svc-sync,OU=Service,DC=corp",
		},
		{
			name: "Full DN is used unchanged in principal mode",
			cfg:  Config{BindUser: "CN=svc-sync,OU=Service,DC=corp", AuthFormat: AuthPrincipalName, BaseDN: "DC=corp"},
			want: "CN=svc-sync,OU=Service,DC=corp",
		},
		{
			name: "Full DN is used unchanged in DN mode",
			cfg:  Config{BindUser: "CN=svc-sync,OU=Service,DC=corp", AuthFormat: AuthDistinguishedName, BaseDN: "OU=Staff,DC=corp"},
			want: "CN=svc-sync,OU=Service,DC=corp",
		},
		{
			name: "Empty user binds anonymously",
			cfg:  Config{AuthFormat: AuthPrincipalName, BaseDN: "DC=corp"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BindName(tt.cfg))
		})
	}
}

func TestDomainFromDN(t *testing.T) {
	assert.Equal(t, "corp.example", DomainFromDN("OU=Staff,DC=corp,DC=example"))
	assert.Equal(t, "", DomainFromDN("OU=Staff"))
	assert.Equal(t, "", DomainFromDN("not a dn"))
}

func TestSplitRDN(t *testing.T) {
	rdn, parent := SplitRDN("CN=Jane Smith,OU=Finance,DC=corp")
	assert.Equal(t, "CN=Jane Smith", rdn)
	assert.Equal(t, "OU=Finance,DC=corp", parent)

	rdn, parent = SplitRDN(`CN=Smith\, Jane,OU=Finance`)
	assert.Equal(t, `CN=Smith\, Jane`, rdn)
	assert.Equal(t, "OU=Finance", parent)

	rdn, parent = SplitRDN("DC=corp")
	assert.Equal(t, "DC=corp", rdn)
	assert.Equal(t, "", parent)
}

func TestChildDN(t *testing.T) {
	assert.Equal(t, "OU=Finance,DC=corp,DC=example", ChildDN("OU", "Finance", "DC=corp,DC=example"))
	assert.Equal(t, `OU=Sales\, APAC,DC=corp`, ChildDN("OU", "Sales, APAC", "DC=corp"))
	assert.Equal(t, "OU=Finance", ChildDN("OU", "Finance", ""))
}
