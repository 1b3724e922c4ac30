package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestIdentityGroupsClient_ListAndQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/identityGroups" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode([]ruckus.IdentityGroup{{ID: "grp-1", Name: "employees"}})
		case r.URL.Path == "/identityGroups/query" && r.Method == "POST":
			_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.IdentityGroup]{
				Data:       []ruckus.IdentityGroup{{ID: "grp-1", Name: "employees", IdentityCount: 12}},
				TotalItems: 1,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	groups, err := client.IdentityGroups().List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "employees", groups[0].Name)

	result, err := client.IdentityGroups().Query(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t, 12, result.Data[0].IdentityCount)
}

func TestIdentityGroupsClient_CreateAndDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/identityGroups" && r.Method == "POST":
			var group ruckus.IdentityGroup

			err := json.NewDecoder(r.Body).Decode(&group)
			require.NoError(t, err)
			assert.Equal(t, "contractors", group.Name)

			w.WriteHeader(http.StatusCreated)
			group.ID = "grp-2"
			_ = json.NewEncoder(w).Encode(group)
		case r.URL.Path == "/identityGroups/grp-2" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	created, err := client.IdentityGroups().Create(ctx, &ruckus.IdentityGroup{Name: "contractors"})
	require.NoError(t, err)
	assert.Equal(t, "grp-2", created.ID)

	err = client.IdentityGroups().Delete(ctx, "grp-2")
	require.NoError(t, err)
}

func TestIdentityGroupsClient_Create_RequiresName(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://example.com")

	_, err := client.IdentityGroups().Create(context.Background(), &ruckus.IdentityGroup{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ruckus.ErrGroupNameRequired)
}

func TestIdentityGroupsClient_Links(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/identityGroups/grp-1/dpskServices/svc-1" && r.Method == "PUT":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/identityGroups/grp-1/policySets/ps-1" && r.Method == "PUT":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.IdentityGroups().LinkDPSKPool(ctx, "grp-1", "svc-1"))
	require.NoError(t, client.IdentityGroups().LinkPolicySet(ctx, "grp-1", "ps-1"))
}

func TestIdentityGroupsClient_AddIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/identityGroups/grp-1/identities", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var identity ruckus.Identity

		err := json.NewDecoder(r.Body).Decode(&identity)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Name)

		w.WriteHeader(http.StatusCreated)
		identity.ID = "id-1"
		_ = json.NewEncoder(w).Encode(identity)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	identity, err := client.IdentityGroups().AddIdentity(context.Background(), "grp-1",
		&ruckus.Identity{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", identity.ID)
}
