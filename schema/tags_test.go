package schema

import (
	"testing"

	"github.com/erraggy/hubdoc/oas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOASTag(t *testing.T) {
	got := parseOASTag("description=User ID, minLength=1 ,deprecated,,=bad")
	assert.Equal(t, map[string]string{
		"description": "User ID",
		"minLength":   "1",
		"deprecated":  "true",
		"=bad":        "true",
	}, got)
	assert.Empty(t, parseOASTag(""))
}

func TestIsFieldRequired(t *testing.T) {
	tests := []struct {
		name      string
		isPointer bool
		jsonOpts  []string
		oasOpts   map[string]string
		want      bool
	}{
		{name: "plain", want: true},
		{name: "omitempty", jsonOpts: []string{"omitempty"}, want: false},
		{name: "pointer", isPointer: true, want: false},
		{name: "explicit required pointer", isPointer: true, oasOpts: map[string]string{"required": "true"}, want: true},
		{name: "explicit optional", oasOpts: map[string]string{"required": "false"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isFieldRequired(tt.isPointer, tt.jsonOpts, tt.oasOpts))
		})
	}
}

func TestApplyOASTag(t *testing.T) {
	base := &oas.Schema{Type: "integer"}
	out := applyOASTag(base, parseOASTag("minimum=1,maximum=10,format=int32,pattern=^x$,deprecated,minimum2=3,maxLength=bad"))

	assert.Equal(t, &oas.Schema{Type: "integer"}, base, "input is not modified")
	require.NotNil(t, out.Minimum)
	require.NotNil(t, out.Maximum)
	assert.InDelta(t, 1, *out.Minimum, 0)
	assert.InDelta(t, 10, *out.Maximum, 0)
	assert.Equal(t, "int32", out.Format)
	assert.Equal(t, "^x$", out.Pattern)
	assert.True(t, out.Deprecated)
	assert.Nil(t, out.MaxLength, "unparsable values are ignored")

	assert.Same(t, base, applyOASTag(base, nil))
}
