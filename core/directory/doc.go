// Package directory is a thin LDAP client for the identity directory (Active Directory
// or any LDAPv3 server).
//
// # Connection model
//
// There is no pooled connection. Each Client call dials, binds with the service
// credential, runs one operation and unbinds, even when the operation fails. A
// context that ends mid-operation force-closes the socket. This trades latency for
// resilience against half-open connections holding stale credentials.
//
// # Bind credential
//
// BindName expands Config.BindUser according to Config.AuthFormat:
//   - principal-name: "svc" -> "svc@corp.example" (Domain, or the DC parts of BaseDN)
//   - distinguished-name: "svc" -> "CN=svc,<BindContainer or BaseDN>"
//
// A BindUser that is already a distinguished name is sent unchanged.
//
// # Search results
//
// Searches are paged (PageSize entries per round trip) and all pages are concatenated.
// Entries are flattened into Records: single-valued attributes become strings, multi-valued
// attributes stay ordered []string. Filter values must go through EscapeFilter.
//
// # Errors
//
// Failures wrap ErrBind, ErrSearch, ErrModify or ErrRelocate so callers can classify them
// with errors.Is. A context deadline keeps the kind of the operation it interrupted.
package directory
