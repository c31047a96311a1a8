package mocks

import (
	"context"

	"hris-sync/core/directory"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of directory.Client
type Client struct {
	mock.Mock
}

func (m *Client) Search(ctx context.Context, baseDN, filter string, attributes []string) ([]directory.Record, error) {
	args := m.Called(ctx, baseDN, filter, attributes)
	if recs, ok := args.Get(0).([]directory.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Modify(ctx context.Context, dn string, replace map[string][]string) error {
	args := m.Called(ctx, dn, replace)
	return args.Error(0)
}

func (m *Client) Move(ctx context.Context, dn, newParent string) error {
	args := m.Called(ctx, dn, newParent)
	return args.Error(0)
}
