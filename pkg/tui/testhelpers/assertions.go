package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-console/pkg/api"
)

// RequireSingleMutation fails unless exactly one mutation named op was sent, and returns it
func RequireSingleMutation(t *testing.T, client *FakeClient, op string) api.Request {
	t.Helper()
	mutations := client.Mutations(op)
	require.Len(t, mutations, 1, "expected exactly one %s mutation", op)
	return mutations[0]
}

// RequireNoMutations fails if any mutation was sent
func RequireNoMutations(t *testing.T, client *FakeClient) {
	t.Helper()
	require.Empty(t, client.Mutations(""), "expected no mutations")
}
