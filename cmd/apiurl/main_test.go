package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCLI(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdout     io.Writer
		wantCode   int
		wantStderr string
	}{
		{
			name:     "ok",
			args:     []string{"apiurl"},
			stdout:   &bytes.Buffer{},
			wantCode: 0,
		},
		{
			name:     "help",
			args:     []string{"apiurl", "-h"},
			stdout:   &bytes.Buffer{},
			wantCode: 0,
		},
		{
			name:       "unknown flag",
			args:       []string{"apiurl", "-x"},
			stdout:     &bytes.Buffer{},
			wantCode:   2,
			wantStderr: "flag provided but not defined: -x\nusage: apiurl [-v] [-version]\n",
		},
		{
			name:       "write error",
			args:       []string{"apiurl"},
			stdout:     failWriter{},
			wantCode:   1,
			wantStderr: "Runtime error: write api url: broken pipe\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := CLI(tt.args, tt.stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestCLI_PrintsEndpoint(t *testing.T) {
	t.Setenv("REACT_APP_API_URL", "https://example-gateway.customer-oci.com/todolist")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, CLI([]string{"apiurl"}, &stdout, &stderr))
	assert.Equal(t, "https://example-gateway.customer-oci.com/todolist\n", stdout.String())
	assert.Empty(t, stderr.String())
}
