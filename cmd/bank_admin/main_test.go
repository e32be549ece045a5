package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golder/bank_statements_api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NewKey(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run([]string{"new-key"}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	key := strings.TrimSpace(strings.TrimPrefix(lines[0], "API key:"))
	hash := strings.TrimSpace(strings.TrimPrefix(lines[1], "ADMIN_API_KEY_HASH:"))
	assert.Len(t, key, apiKeyBytes*2)
	assert.True(t, utils.CheckAPIKeyHash(key, hash))
}

func TestRun_HashKey(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run([]string{"hash-key", "s3cret"}, &out))

	assert.True(t, utils.CheckAPIKeyHash("s3cret", strings.TrimSpace(out.String())))
}

func TestRun_Token(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	var out bytes.Buffer

	require.NoError(t, run([]string{"token", "--operator", "treasurer", "--ttl", "1h"}, &out))

	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out.String()), "."))
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"hash-key"}, &out))
	assert.Error(t, run([]string{"token"}, &out))
	assert.Error(t, run([]string{"rotate"}, &out))
}
