package application

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntboard/internal/testutil"
)

func TestDeleteApplication_Force(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	id := addTestApplication(t, "Initech", "Engineer", "applied")

	output, err := testutil.ExecuteCommand(t, DeleteCmd(),
		strconv.Itoa(id), "--force", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])

	// Gone from the board
	listOut, err := testutil.ExecuteCommand(t, ListCmd(), "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, listOut, strconv.Itoa(id))
}
