package builder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BuilderError
		expected string
	}{
		{
			name:     "empty",
			err:      &BuilderError{},
			expected: "builder",
		},
		{
			name: "hub discovery",
			err:  NewUnsupportedDiscoveryError("example.com/chat.IChatHub", "Everything"),
			expected: `builder: hub example.com/chat.IChatHub field discovery (value: "Everything"): ` +
				"unsupported discovery mode",
		},
		{
			name: "method args",
			err:  NewUnsupportedArgDiscoveryError("example.com/chat.IChatHub", "Send", "Some"),
			expected: `builder: method example.com/chat.IChatHub.Send field args (value: "Some"): ` +
				"unsupported argument discovery override",
		},
		{
			name:     "verb with cause",
			err:      NewInvalidVerbError("chat.Hub", "Send", "connect", errors.New("unknown operation kind")),
			expected: `builder: method chat.Hub.Send field verb (value: "connect"): unknown operation kind`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBuilderError_Is(t *testing.T) {
	err := fmt.Errorf("pass failed: %w", NewUnsupportedDiscoveryError("chat.Hub", "x"))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	assert.False(t, errors.Is(err, oaserrors.ErrDuplicatePath))
	assert.False(t, errors.Is(err, oaserrors.ErrPrecondition))

	var bErr *BuilderError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, ComponentHub, bErr.Component)
}

func TestBuilderError_Unwrap(t *testing.T) {
	cause := errors.New("bad verb")
	err := NewInvalidVerbError("chat.Hub", "Send", "x", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, NewUnsupportedDiscoveryError("chat.Hub", "x").Unwrap())
}

func TestBuilderError_Location(t *testing.T) {
	tests := []struct {
		err      *BuilderError
		expected string
	}{
		{&BuilderError{Type: "chat.Hub", Method: "Send"}, "chat.Hub.Send"},
		{&BuilderError{Type: "chat.Hub"}, "chat.Hub"},
		{&BuilderError{Component: ComponentArgument}, "argument"},
		{&BuilderError{}, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Location())
	}
}
