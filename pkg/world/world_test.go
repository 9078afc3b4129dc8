package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorld(t *testing.T) {
	w, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "hub.home", w.Start)
	assert.Len(t, w.Nodes, 8)

	relic, ok := w.Node("core.relic")
	require.True(t, ok)
	assert.Equal(t, "CORE RELIC", relic.Title)
	assert.Equal(t, []string{"relay.shard", "relic.key"}, relic.Entry.Items)
	assert.Equal(t, []string{"lattice_sigil", "forked"}, relic.Entry.Flags)
	assert.Equal(t, []string{"archives.arc"}, relic.Links)

	hub, ok := w.Node("hub.home")
	require.True(t, ok)
	tracer, ok := hub.Files["tracer.s"]
	require.True(t, ok)
	assert.Equal(t, FileScript, tracer.Type)
	assert.Equal(t, "tracer", tracer.ScriptID)
	assert.True(t, tracer.Downloadable)

	gate, ok := w.Node("perimeter.gate")
	require.True(t, ok)
	assert.True(t, gate.Files["cipher.txt"].Cipher)
	assert.Equal(t, "rzore vf gur qevsg. gur nepuvir jnagf n onqtr naq n znfx.",
		gate.Files["cipher.txt"].Content)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing start",
			yaml:    "nodes:\n  a:\n    title: A\n",
			wantErr: "no start node",
		},
		{
			name:    "undefined start",
			yaml:    "start: b\nnodes:\n  a:\n    title: A\n",
			wantErr: "not defined",
		},
		{
			name: "dangling link",
			yaml: `
start: a
nodes:
  a:
    title: A
    links: [ghost.node]
`,
			wantErr: "undefined node",
		},
		{
			name: "script file without id",
			yaml: `
start: a
nodes:
  a:
    title: A
    files:
      x.s:
        type: script
        content: noop
`,
			wantErr: "no script_id",
		},
		{
			name: "unknown file type",
			yaml: `
start: a
nodes:
  a:
    title: A
    files:
      x:
        type: blob
        content: noop
`,
			wantErr: "unknown type",
		},
		{
			name: "valid minimal world",
			yaml: `
start: a
nodes:
  a:
    title: A
    links: [a]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
