package builder

import (
	"errors"
	"testing"

	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationKind_Resolution(t *testing.T) {
	b := &Builder{defaultKind: oas.OperationPost, logger: oas.NopLogger{}}
	h := hubType("H", hub.DiscoveryMethods)

	tests := []struct {
		name     string
		verb     oas.OperationKind
		expected oas.OperationKind
		wantErr  bool
	}{
		{name: "empty uses default", verb: "", expected: oas.OperationPost},
		{name: "lower case", verb: "get", expected: oas.OperationGet},
		{name: "upper case", verb: "DELETE", expected: oas.OperationDelete},
		{name: "unknown", verb: "subscribe", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := b.operationKind(h, method("Do", &hub.MethodDescriptor{Verb: tt.verb}))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oaserrors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	kind, err := b.operationKind(h, method("Do", nil))
	require.NoError(t, err)
	assert.Equal(t, oas.OperationPost, kind)
}

func TestNewOperation(t *testing.T) {
	op := newOperation("Chat", method("Send", nil), nil)
	assert.Equal(t, []string{"Chat"}, op.Tags)
	assert.Empty(t, op.Summary)
	assert.Nil(t, op.Parameters)

	op = newOperation("Chat", method("Send", &hub.MethodDescriptor{Summary: "s", Description: "d"}), nil)
	assert.Equal(t, "s", op.Summary)
	assert.Equal(t, "d", op.Description)
}

func TestInsert(t *testing.T) {
	doc := oas.NewDocument("t", "1")
	e := &Entry{Tag: "Chat", Path: "hubs/Chat/Send", Kind: oas.OperationPost, Operation: &oas.Operation{}}

	require.NoError(t, insert(doc, e))
	require.Contains(t, doc.Paths, "hubs/Chat/Send")
	assert.Same(t, e.Operation, doc.Paths["hubs/Chat/Send"].Post)
	require.Len(t, doc.Tags, 1)

	err := insert(doc, &Entry{Tag: "Other", Path: "hubs/Chat/Send", Kind: oas.OperationGet, Operation: &oas.Operation{}})
	assert.True(t, errors.Is(err, oaserrors.ErrDuplicatePath))
	assert.Nil(t, doc.Paths["hubs/Chat/Send"].Get)
	assert.Len(t, doc.Tags, 1)
}
