package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:5000", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:5000"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=cfg.json", "-a", "host"},
			allowed: []string{"-config"},
			want:    []string{"-config=cfg.json"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-f", "-a", "host"},
			allowed: []string{"-f"},
			want:    []string{"-f"},
		},
		{
			name:    "order preserved across several flags",
			args:    []string{"-m", "s3", "positional", "-a", "host"},
			allowed: []string{"-a", "-m"},
			want:    []string{"-m", "s3", "-a", "host"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-q", "1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", "host", "-c", "client.json"}
	assert.Equal(t, "client.json", JsonConfigFlags())

	os.Args = []string{"bin", "-config=server.json"}
	assert.Equal(t, "server.json", JsonConfigFlags())

	os.Args = []string{"bin"}
	assert.Equal(t, "", JsonConfigFlags())
}
