package builder_test

import (
	"errors"
	"testing"

	"github.com/erraggy/hubdoc/builder"
	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/internal/testutil"
	"github.com/erraggy/hubdoc/loader"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/erraggy/hubdoc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, document string, sources map[string]string) (*oas.Document, *schema.Registry, error) {
	t.Helper()
	var modules []hub.Module
	for pkgPath, src := range sources {
		m, err := loader.FromPackage(testutil.LoadFile(t, pkgPath, src))
		require.NoError(t, err)
		modules = append(modules, m)
	}
	b, err := builder.New(modules)
	require.NoError(t, err)
	reg, err := schema.NewRegistry()
	require.NoError(t, err)
	doc := oas.NewDocument("Chat API", "1.0.0")
	return doc, reg, b.Apply(doc, reg, document)
}

func TestApply_ChatHub(t *testing.T) {
	doc, reg, err := build(t, "v1", map[string]string{"example.com/chat": testutil.ChatHubSource})
	require.NoError(t, err)

	assert.Equal(t, []string{"chat/Chat/SendMessage", "chat/Chat/messages/Post"}, doc.Paths.Keys())

	send := doc.Paths["chat/Chat/SendMessage"].Post
	require.NotNil(t, send)
	assert.Equal(t, []string{"Chat"}, send.Tags)
	require.Len(t, send.Parameters, 2)
	assert.Equal(t, "user", send.Parameters[0].Name)
	assert.Equal(t, "text", send.Parameters[1].Name)
	assert.Equal(t, oas.LocationQuery, send.Parameters[0].In)
	assert.Equal(t, "string", send.Parameters[0].Schema.Type)

	post := doc.Paths["chat/Chat/messages/Post"].Put
	require.NotNil(t, post)
	assert.Equal(t, "Post a message", post.Summary)
	require.Len(t, post.Parameters, 1)
	assert.Equal(t, "msg", post.Parameters[0].Name)
	assert.Equal(t, "chat.Message", post.Parameters[0].Schema.RefName())

	assert.Equal(t, []string{"chat.Message", "chat.User"}, reg.Names())
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Chat", doc.Tags[0].Name)
}

const presenceSource = `package presence

// PresenceHub tracks who is online.
//
//hubdoc:hub discovery:"Methods" documents:"internal"
type PresenceHub struct{}

// Join marks a user as online.
//
//hubdoc:arg room description:"Room to join"
func (h *PresenceHub) Join(user string, room string) {}

//hubdoc:method verb:"delete"
func (h *PresenceHub) Leave(user string) {}
`

func TestApply_DocumentMembership(t *testing.T) {
	sources := map[string]string{
		"example.com/chat":     testutil.ChatHubSource,
		"example.com/presence": presenceSource,
	}

	doc, _, err := build(t, "public", sources)
	require.NoError(t, err)
	assert.NotContains(t, doc.Paths, "hubs/PresenceHub/Join")

	doc, _, err = build(t, "internal", sources)
	require.NoError(t, err)
	require.Contains(t, doc.Paths, "hubs/PresenceHub/Join")

	join := doc.Paths["hubs/PresenceHub/Join"].Post
	require.Len(t, join.Parameters, 1)
	assert.Equal(t, "room", join.Parameters[0].Name)
	assert.Equal(t, "Room to join", join.Parameters[0].Description)

	leave := doc.Paths["hubs/PresenceHub/Leave"].Delete
	require.NotNil(t, leave)
	assert.Empty(t, leave.Parameters)
}

const collidingSource = `package other

//hubdoc:hub path:"chat/Chat"
type ChatHub interface {
	SendMessage(user string) error
}
`

func TestApply_DuplicatePathAcrossModules(t *testing.T) {
	_, _, err := build(t, "v1", map[string]string{
		"example.com/chat":  testutil.ChatHubSource,
		"example.com/other": collidingSource,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrDuplicatePath))
}

const prebuiltSource = `package models

type Message struct {
	Text string ` + "`json:\"text\"`" + `
}

//hubdoc:hub
type IRelayHub interface {
	Forward(msg Message, copies []Message)
}
`

func TestApply_PreRegisteredTypesAreReferenced(t *testing.T) {
	pkg := testutil.LoadFile(t, "example.com/models", prebuiltSource)
	m, err := loader.FromPackage(pkg)
	require.NoError(t, err)

	reg, err := schema.NewRegistry()
	require.NoError(t, err)
	msgType := pkg.Types.Scope().Lookup("Message").Type()
	reg.Generate(msgType)

	b, err := builder.New([]hub.Module{m})
	require.NoError(t, err)
	doc := oas.NewDocument("t", "1")
	require.NoError(t, b.Apply(doc, reg, "v1"))

	op := doc.Paths["hubs/Relay/Forward"].Post
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, oas.RefSchema("models.Message"), op.Parameters[0].Schema)
	assert.Equal(t, "array", op.Parameters[1].Schema.Type)
	assert.Equal(t, "models.Message", op.Parameters[1].Schema.Items.RefName())
}
