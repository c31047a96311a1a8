package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hris-sync/core/directory"
	"hris-sync/core/directory/mocks"
	"hris-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBase = "OU=Staff,DC=corp,DC=example"

func newAdapter(client directory.Client) *DirectoryAdapter {
	return NewDirectoryAdapter(client, directory.Config{
		BaseDN:          testBase,
		UserFilter:      "(objectClass=user)",
		GenderAttribute: "extensionAttribute1",
	})
}

func TestDirectoryAdapter_SearchUsers(t *testing.T) {
	client := new(mocks.Client)
	adapter := newAdapter(client)

	client.On("Search", mock.Anything, testBase, "(objectClass=user)", adapter.Schema().Attributes()).
		Return([]directory.Record{
			{
				directory.DNKey:       "CN=Jane Smith," + testBase,
				"sAMAccountName":      "jsmith",
				"displayName":         "Jane Smith",
				"employeeID":          "MTI000001",
				"department":          "Finance",
				"title":               "Analyst",
				"manager":             "CN=Boss," + testBase,
				"mobile":              "628123456789",
				"extensionAttribute1": "F",
			},
			{
				directory.DNKey:  "CN=svc," + testBase,
				"samaccountname": "svc",
				"proxyAddresses": []string{"a", "b"},
			},
		}, nil)

	entries, err := adapter.SearchUsers(context.Background(), testBase, "(objectClass=user)", nil)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, reconcile.DirectoryEntry{
		AccountName:      "jsmith",
		DisplayName:      "Jane Smith",
		EmployeeID:       "MTI000001",
		Department:       "Finance",
		Title:            "Analyst",
		ManagerReference: "CN=Boss," + testBase,
		Mobile:           "628123456789",
		Gender:           "F",
		UniquePath:       "CN=Jane Smith," + testBase,
	}, entries[0])
	assert.Equal(t, "svc", entries[1].AccountName)
	assert.Empty(t, entries[1].EmployeeID)
}

func TestDirectoryAdapter_SearchUsersError(t *testing.T) {
	client := new(mocks.Client)
	client.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid credentials", directory.ErrBind))

	_, err := newAdapter(client).SearchUsers(context.Background(), testBase, "(objectClass=user)", nil)
	assert.ErrorIs(t, err, directory.ErrBind)
}

func TestDirectoryAdapter_ApplyAttributeChanges(t *testing.T) {
	client := new(mocks.Client)
	client.On("Modify", mock.Anything, "CN=Jane,"+testBase, map[string][]string{
		"department":          {"Finance"},
		"mobile":              {"6281234567890"},
		"employeeID":          {"MTI000001"},
		"extensionAttribute1": {"F"},
	}).Return(nil)

	err := newAdapter(client).ApplyAttributeChanges(context.Background(), "CN=Jane,"+testBase, reconcile.AttributeDiff{
		reconcile.AttrDepartment: "Finance",
		reconcile.AttrMobile:     "6281234567890",
		reconcile.AttrEmployeeID: "MTI000001",
		reconcile.AttrGender:     "F",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestDirectoryAdapter_ApplyEmptyDiff(t *testing.T) {
	client := new(mocks.Client)

	err := newAdapter(client).ApplyAttributeChanges(context.Background(), "CN=Jane,"+testBase, reconcile.AttributeDiff{})

	require.NoError(t, err)
	client.AssertNotCalled(t, "Modify", mock.Anything, mock.Anything, mock.Anything)
}

func TestDirectoryAdapter_ApplyUnknownAttribute(t *testing.T) {
	client := new(mocks.Client)

	err := newAdapter(client).ApplyAttributeChanges(context.Background(), "CN=Jane,"+testBase, reconcile.AttributeDiff{"costCenter": "42"})

	assert.ErrorIs(t, err, directory.ErrModify)
	client.AssertNotCalled(t, "Modify", mock.Anything, mock.Anything, mock.Anything)
}

func TestDirectoryAdapter_RelocateEntry(t *testing.T) {
	client := new(mocks.Client)
	client.On("Move", mock.Anything, "CN=Jane,OU=Engineering,"+testBase, "OU=Finance,"+testBase).
		Return(errors.New("entry already exists"))

	err := newAdapter(client).RelocateEntry(context.Background(), "CN=Jane,OU=Engineering,"+testBase, "OU=Finance,"+testBase)
	assert.EqualError(t, err, "entry already exists")
}

func TestDirectoryAdapter_ResolvePathByEmployeeID(t *testing.T) {
	filter := "(&(objectClass=user)(employeeID=MTI000100))"

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Search", mock.Anything, testBase, filter, []string{"employeeID"}).
			Return([]directory.Record{
				{directory.DNKey: "CN=Boss B," + testBase},
				{directory.DNKey: "CN=Boss A," + testBase},
			}, nil)

		path, found, err := newAdapter(client).ResolvePathByEmployeeID(context.Background(), "MTI000100")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "CN=Boss A,"+testBase, path)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Search", mock.Anything, testBase, filter, []string{"employeeID"}).
			Return([]directory.Record{}, nil)

		path, found, err := newAdapter(client).ResolvePathByEmployeeID(context.Background(), "MTI000100")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, path)
	})

	t.Run("EscapesValue", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Search", mock.Anything, testBase, `(&(objectClass=user)(employeeID=\2a))`, mock.Anything).
			Return([]directory.Record{}, nil)

		_, found, err := newAdapter(client).ResolvePathByEmployeeID(context.Background(), "*")
		require.NoError(t, err)
		assert.False(t, found)
		client.AssertExpectations(t)
	})
}

func TestDepartmentContainer(t *testing.T) {
	assert.Equal(t, "OU=Finance,"+testBase, DepartmentContainer("Finance", testBase))
	assert.Equal(t, `OU=R\+D,`+testBase, DepartmentContainer("R+D", testBase))
}
