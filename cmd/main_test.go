package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSourcePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"module relative", "/home/ci/work/hunt-kitchen-sub000/internal/orders/workflow.go", "internal/orders/workflow.go"},
		{"gopath", "/root/go/src/github.com/redis/go-redis/v9/redis.go", "github.com/redis/go-redis/v9/redis.go"},
		{"unknown", "/opt/build/main.go", "/opt/build/main.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSourcePath(tt.path, "/hunt-kitchen-sub000/"))
		})
	}
}

func TestSetupLogging(t *testing.T) {
	require.NoError(t, setupLogging(""))
	require.NoError(t, setupLogging("warn"))
	assert.Error(t, setupLogging("chatty"))
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{{"serve"}, {"migrate"}, {"seed"}, {"apikey", "create"}, {"admin", "grant"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
