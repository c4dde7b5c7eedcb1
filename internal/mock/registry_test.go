//nolint:testpackage // internal functions require same package
package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Run("registers every command", func(t *testing.T) {
		registry := NewRegistry(DefaultState())

		require.NotNil(t, registry)

		for _, name := range []string{"get-state", "list", "create", "modify", "delete", "setup", "passwd"} {
			assert.NotNil(t, registry.Get(name), "missing handler for %s", name)
		}
	})
}

func TestRegistryGet(t *testing.T) {
	t.Run("returns nil when not found", func(t *testing.T) {
		registry := NewRegistry(DefaultState())

		assert.Nil(t, registry.Get("foo"))
		assert.Nil(t, registry.Get("pools"))
		assert.Nil(t, registry.Get(""))
	})
}

func TestRegistryAll(t *testing.T) {
	t.Run("returns command names in registration order", func(t *testing.T) {
		registry := NewRegistry(DefaultState())

		assert.Equal(t, []string{"get-state", "list", "create", "modify", "delete", "setup", "passwd"}, registry.All())
	})

	t.Run("returns a copy", func(t *testing.T) {
		registry := NewRegistry(DefaultState())

		names := registry.All()
		names[0] = "changed"

		assert.Equal(t, "get-state", registry.All()[0])
	})
}

func TestGetStateHandler(t *testing.T) {
	state := State{PrimaryPool: "custom"}
	registry := NewRegistry(state)

	payload, err := registry.Get("get-state")([]string{"get-state", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, state, payload)
}

func TestListPools(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{name: "pools_second", args: []string{"list", "pools"}, ok: true},
		{name: "pools_later", args: []string{"list", "users", "pools"}, ok: true},
		{name: "list_alone", args: []string{"list"}, ok: false},
		{name: "other_resource", args: []string{"list", "users"}, ok: false},
		{name: "case_sensitive", args: []string{"list", "Pools"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := listPools(tt.args)

			if !tt.ok {
				var notImpl *NotImplementedError

				require.ErrorAs(t, err, &notImpl)
				assert.Equal(t, "list", notImpl.Command)
				assert.Nil(t, payload)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{"tank-dev", "data-dev", "backup-dev"}, payload)
		})
	}

	t.Run("returns a copy", func(t *testing.T) {
		payload, err := listPools([]string{"list", "pools"})
		require.NoError(t, err)

		pools, ok := payload.([]string)
		require.True(t, ok)

		pools[0] = "changed"
		assert.Equal(t, "tank-dev", Pools[0])
	})
}

func TestSucceed(t *testing.T) {
	payload, err := succeed([]string{"create", "user", "alice", "--password", "secret"})
	require.NoError(t, err)

	assert.Equal(t, Result{
		Success: true,
		Message: "Mocked 'create user alice --password secret' command was successful.",
	}, payload)
}
