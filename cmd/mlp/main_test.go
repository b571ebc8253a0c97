package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "mlp "+version+"\n", stdout.String())
}

func TestRun_Unknown(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run([]string{"serve"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Commands:")
}

func TestRun_Demo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"demo"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "A * B of shape: (3,3) is\n4 4 4\n")
	assert.Contains(t, stderr.String(), "matrix: dimension mismatch")
}

func TestRun_XOR(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"xor", "-epochs", "10"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, stderr.String(), "compiled neural net")
}
