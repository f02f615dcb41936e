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
			args:    []string{"-s", "vault.db", "-z", "1"},
			allowed: []string{"-s", "-d"},
			want:    []string{"-s", "vault.db"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=sqlite", "-z", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d=sqlite"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-z", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "dash token is not a value",
			args:    []string{"-c", "-config=alt.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "-config=alt.json"},
		},
		{
			name:    "equals value may start with dash",
			args:    []string{"-config=--odd.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=--odd.json"},
		},
		{
			name:    "repeats preserved in order",
			args:    []string{"-o", "users", "-o", "cats"},
			allowed: []string{"-o"},
			want:    []string{"-o", "users", "-o", "cats"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-c"},
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
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"catboard", "-c", "/etc/catboard.json"}
		assert.Equal(t, "/etc/catboard.json", JsonConfigFlags())
	})

	t.Run("long mixed with other flags", func(t *testing.T) {
		os.Args = []string{"catboard", "-d", "sqlite", "-config", "/tmp/c.json", "-o", "cats"}
		assert.Equal(t, "/tmp/c.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"catboard", "-d", "pgx"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"catboard", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", JsonConfigFlags())
	})
}
