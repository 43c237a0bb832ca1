// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"path"
	"testing"

	"github.com/erraggy/hubdoc/loader"
	"golang.org/x/tools/go/packages"
)

// ChatHubSource is a small hub package shared by loader, builder and
// end-to-end tests.
const ChatHubSource = `package chat

import (
	"context"
	"time"
)

// Message is a chat message.
type Message struct {
	ID     string    ` + "`json:\"id\"`" + `
	Text   string    ` + "`json:\"text\" oas:\"description=Message body,maxLength=500\"`" + `
	SentAt time.Time ` + "`json:\"sentAt\"`" + `
	Author *User     ` + "`json:\"author,omitempty\"`" + `
}

// User is a chat participant.
type User struct {
	Name string ` + "`json:\"name\"`" + `
}

// IChatHub is the realtime chat contract.
//
//hubdoc:hub path:"chat/{hubName}"
type IChatHub interface {
	// SendMessage broadcasts text to everyone.
	SendMessage(user string, text string) error

	// Post stores a full message.
	//
	//hubdoc:method name:"messages/{methodName}" verb:"put" summary:"Post a message" args:"Args"
	//hubdoc:hidden ctx
	Post(ctx context.Context, msg Message) error

	//hubdoc:hidden
	Reset() error
}
`

// LoadSource type-checks the given files in memory and returns them as a
// package in the shape go/packages produces with loader.LoadMode. Imports
// are resolved from source, so fixtures may use the standard library.
func LoadSource(t testing.TB, pkgPath string, files map[string]string) *packages.Package {
	t.Helper()
	pkg, err := loader.ParseSource(pkgPath, files)
	if err != nil {
		t.Fatalf("load %s: %v", pkgPath, err)
	}
	return pkg
}

// LoadFile is LoadSource for a single file named after the package.
func LoadFile(t testing.TB, pkgPath, src string) *packages.Package {
	t.Helper()
	return LoadSource(t, pkgPath, map[string]string{path.Base(pkgPath) + ".go": src})
}
