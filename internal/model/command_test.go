package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{input: "build", want: CommandBuild},
		{input: " Lint ", want: CommandLint},
		{input: "POSTINSTALL", want: CommandPostinstall},
		{input: "deploy", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPipelineCoversEveryCommand(t *testing.T) {
	assert.Len(t, Pipeline, len(commandDescriptions))

	for _, c := range Pipeline {
		assert.NotEmpty(t, c.Description(), c)
	}

	assert.Equal(t, []string{
		"clean", "build", "testing", "lint", "reporting",
		"coverage", "postinstall", "docs", "globals",
	}, CommandNames())
}

func TestRequest(t *testing.T) {
	req := NewRequest(DefaultOptions(), CommandGlobals, CommandClean, CommandLint, CommandClean)

	assert.False(t, req.Empty())
	assert.True(t, req.Has(CommandLint))
	assert.False(t, req.Has(CommandBuild))
	assert.Equal(t, []Command{CommandClean, CommandLint, CommandGlobals}, req.Ordered())

	assert.True(t, NewRequest(DefaultOptions()).Empty())
	assert.True(t, Request{Commands: map[Command]bool{CommandBuild: false}}.Empty())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 5, opts.MinWorkers)
	assert.Equal(t, 10, opts.MaxWorkers)
	assert.False(t, opts.JSX)
	assert.False(t, opts.Jest)
}
