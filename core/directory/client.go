package directory

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Conn is the subset of *ldap.Conn the client relies on.
type Conn interface {
	Bind(username, password string) error
	SearchWithPaging(req *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error)
	Modify(req *ldap.ModifyRequest) error
	ModifyDN(req *ldap.ModifyDNRequest) error
	Unbind() error
	Close() error
}

// Dialer opens a fresh, unauthenticated connection.
type Dialer func(ctx context.Context) (Conn, error)

// Client defines the directory operations used by the reconciliation adapters.
// Every call runs on its own connection: dial, bind, operate, unbind.
type Client interface {
	// Search runs a paged subtree search and returns flattened records.
	Search(ctx context.Context, baseDN, filter string, attributes []string) ([]Record, error)
	// Modify replaces each attribute in the map with the given values.
	// An empty map does not touch the network.
	Modify(ctx context.Context, dn string, replace map[string][]string) error
	// Move relocates an entry under a new parent, keeping its relative name.
	Move(ctx context.Context, dn, newParent string) error
}

// NewClient creates a directory client that dials the configured server.
func NewClient(cfg Config) Client {
	return NewClientWithDialer(cfg, DialLDAP(cfg))
}

// NewClientWithDialer creates a client on top of a custom dialer.
func NewClientWithDialer(cfg Config, dial Dialer) Client {
	return &ldapClient{cfg: cfg, dial: dial}
}

// DialLDAP returns a Dialer for the configured ldap:// or ldaps:// address.
// The operation timeout is the configured timeout, shortened to the context deadline.
func DialLDAP(cfg Config) Dialer {
	return func(ctx context.Context) (Conn, error) {
		timeout := cfg.Timeout()
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < timeout {
				timeout = remaining
			}
		}
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}

		opts := []ldap.DialOpt{ldap.DialWithDialer(&net.Dialer{Timeout: timeout})}
		if cfg.UseTLS {
			opts = append(opts, ldap.DialWithTLSConfig(&tls.Config{
				ServerName:         cfg.Host,
				InsecureSkipVerify: cfg.InsecureSkipVerify,
			}))
		}

		conn, err := ldap.DialURL(cfg.URL(), opts...)
		if err != nil {
			return nil, err
		}
		conn.SetTimeout(timeout)
		return &ldapConn{Conn: conn}, nil
	}
}

type ldapConn struct {
	*ldap.Conn
}

func (c *ldapConn) Close() error {
	c.Conn.Close()
	return nil
}

type ldapClient struct {
	cfg  Config
	dial Dialer
}

func (c *ldapClient) Search(ctx context.Context, baseDN, filter string, attributes []string) ([]Record, error) {
	var records []Record
	err := c.withConn(ctx, func(conn Conn) error {
		req := ldap.NewSearchRequest(
			baseDN,
			ldap.ScopeWholeSubtree,
			ldap.NeverDerefAliases,
			0, 0, false,
			filter,
			attributes,
			nil,
		)
		res, err := conn.SearchWithPaging(req, PageSize)
		if err != nil {
			return fmt.Errorf("%w: base %q filter %q: %w", ErrSearch, baseDN, filter, err)
		}
		records = make([]Record, 0, len(res.Entries))
		for _, entry := range res.Entries {
			records = append(records, FlattenEntry(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *ldapClient) Modify(ctx context.Context, dn string, replace map[string][]string) error {
	if len(replace) == 0 {
		return nil
	}

	attrs := make([]string, 0, len(replace))
	for attr := range replace {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	req := ldap.NewModifyRequest(dn, nil)
	for _, attr := range attrs {
		req.Replace(attr, replace[attr])
	}

	return c.withConn(ctx, func(conn Conn) error {
		if err := conn.Modify(req); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrModify, dn, err)
		}
		return nil
	})
}

func (c *ldapClient) Move(ctx context.Context, dn, newParent string) error {
	rdn, _ := SplitRDN(dn)
	if rdn == "" || newParent == "" {
		return fmt.Errorf("%w: %s: empty relative name or parent", ErrRelocate, dn)
	}

	req := ldap.NewModifyDNRequest(dn, rdn, true, newParent)
	return c.withConn(ctx, func(conn Conn) error {
		if err := conn.ModifyDN(req); err != nil {
			return fmt.Errorf("%w: %s -> %s: %w", ErrRelocate, dn, newParent, err)
		}
		return nil
	})
}

// withConn scopes one operation to one authenticated connection. The connection is
// unbound on every exit path and force-closed if the context ends mid-operation.
func (c *ldapClient) withConn(ctx context.Context, fn func(Conn) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrBind, err)
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %w", ErrBind, c.cfg.URL(), err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer func() {
		stop()
		if err := conn.Unbind(); err != nil {
			_ = conn.Close()
		}
	}()

	if err := conn.Bind(BindName(c.cfg), c.cfg.BindPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrBind, err)
	}

	if err := fn(conn); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return fmt.Errorf("%w (%w)", err, ctxErr)
		}
		return err
	}
	return nil
}
