package directive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	pos := token.Position{Filename: "chat.go", Line: 3, Column: 1}

	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantKind   Kind
		wantTarget string
		wantOpts   map[string]string
		wantErr    string
	}{
		{
			name:   "plain comment",
			text:   "// IChatHub is the chat contract.",
			wantOK: false,
		},
		{
			name:     "bare hub",
			text:     "//hubdoc:hub",
			wantOK:   true,
			wantKind: KindHub,
			wantOpts: map[string]string{},
		},
		{
			name:     "hub with options",
			text:     `//hubdoc:hub path:"chat/{hubName}" discovery:"None" documents:"v1,v2"`,
			wantOK:   true,
			wantKind: KindHub,
			wantOpts: map[string]string{"path": "chat/{hubName}", "discovery": "None", "documents": "v1,v2"},
		},
		{
			name:     "method with escaped quote",
			text:     `//hubdoc:method summary:"Say \"hi\"" verb:"get"`,
			wantOK:   true,
			wantKind: KindMethod,
			wantOpts: map[string]string{"summary": `Say "hi"`, "verb": "get"},
		},
		{
			name:       "arg with description",
			text:       `//hubdoc:arg user description:"Sender name"`,
			wantOK:     true,
			wantKind:   KindArg,
			wantTarget: "user",
			wantOpts:   map[string]string{"description": "Sender name"},
		},
		{
			name:       "arg without options",
			text:       "//hubdoc:arg\tuser",
			wantOK:     true,
			wantKind:   KindArg,
			wantTarget: "user",
			wantOpts:   map[string]string{},
		},
		{
			name:     "bare hidden",
			text:     "//hubdoc:hidden",
			wantOK:   true,
			wantKind: KindHidden,
		},
		{
			name:       "hidden parameter",
			text:       "//hubdoc:hidden text",
			wantOK:     true,
			wantKind:   KindHidden,
			wantTarget: "text",
		},
		{
			name:    "unknown kind",
			text:    "//hubdoc:hubb",
			wantOK:  true,
			wantErr: "chat.go:3:1: unknown directive //hubdoc:hubb",
		},
		{
			name:    "unknown option",
			text:    `//hubdoc:hub verb:"get"`,
			wantOK:  true,
			wantErr: `unknown option "verb" for //hubdoc:hub`,
		},
		{
			name:    "arg missing name",
			text:    `//hubdoc:arg description:"x"`,
			wantOK:  true,
			wantErr: "requires a parameter name",
		},
		{
			name:    "hidden with options",
			text:    `//hubdoc:hidden reason:"x"`,
			wantOK:  true,
			wantErr: "at most one parameter name",
		},
		{
			name:    "malformed options",
			text:    `//hubdoc:method name:send`,
			wantOK:  true,
			wantErr: `malformed option "name"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok, err := ParseLine(tt.text, pos)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantTarget, d.Target)
			assert.Equal(t, pos, d.Pos)
			if tt.wantOpts != nil {
				assert.Equal(t, tt.wantOpts, d.Options)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]string
		wantErr string
	}{
		{name: "empty", in: "", want: map[string]string{}},
		{name: "whitespace", in: "  \t ", want: map[string]string{}},
		{name: "single", in: `a:"1"`, want: map[string]string{"a": "1"}},
		{name: "multiple", in: `a:"1"  b:"two words"`, want: map[string]string{"a": "1", "b": "two words"}},
		{name: "empty value", in: `a:""`, want: map[string]string{"a": ""}},
		{name: "escapes", in: `a:"x\ty"`, want: map[string]string{"a": "x\ty"}},
		{name: "missing colon", in: `a"1"`, wantErr: "malformed option"},
		{name: "missing quote", in: `a:1`, wantErr: "malformed option"},
		{name: "dangling key", in: `a:`, wantErr: "malformed option"},
		{name: "unterminated", in: `a:"1`, wantErr: "unterminated value"},
		{name: "no separator", in: `a:"1"b:"2"`, wantErr: "missing space"},
		{name: "duplicate", in: `a:"1" a:"2"`, wantErr: `duplicate option "a"`},
		{name: "leading quote", in: `"a"`, wantErr: "malformed option list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"v1", "v2"}, SplitList(" v1, ,v2 "))
	assert.Nil(t, SplitList(""))
}

func TestParseComments(t *testing.T) {
	src := `package chat

// IChatHub is the chat contract.
//
//hubdoc:hub path:"chat/{hubName}"
//hubdoc:hidden
type IChatHub interface{}

// Plain has no directives.
type Plain struct{}

// Broken has a bad directive.
//
//hubdoc:hub nope:"1"
type Broken struct{}
`
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "chat.go", src, parser.ParseComments)
	require.NoError(t, err)

	docs := map[string]*ast.CommentGroup{}
	for _, decl := range f.Decls {
		gd := decl.(*ast.GenDecl)
		docs[gd.Specs[0].(*ast.TypeSpec).Name.Name] = gd.Doc
	}

	t.Run("directives in order", func(t *testing.T) {
		ds, err := ParseComments(fset, docs["IChatHub"])
		require.NoError(t, err)
		require.Len(t, ds, 2)
		assert.Equal(t, KindHub, ds[0].Kind)
		assert.Equal(t, 5, ds[0].Pos.Line)
		assert.Equal(t, KindHidden, ds[1].Kind)
		v, ok := ds[0].Option(KeyPath)
		assert.True(t, ok)
		assert.Equal(t, "chat/{hubName}", v)
	})

	t.Run("no directives", func(t *testing.T) {
		ds, err := ParseComments(fset, docs["Plain"])
		require.NoError(t, err)
		assert.Empty(t, ds)
	})

	t.Run("nil group", func(t *testing.T) {
		ds, err := ParseComments(fset, nil)
		require.NoError(t, err)
		assert.Nil(t, ds)
	})

	t.Run("error carries position", func(t *testing.T) {
		_, err := ParseComments(fset, docs["Broken"])
		require.Error(t, err)
		var dErr *Error
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, 14, dErr.Pos.Line)
	})
}

func TestCollect(t *testing.T) {
	parse := func(t *testing.T, lines ...string) []Directive {
		t.Helper()
		var out []Directive
		for i, l := range lines {
			d, ok, err := ParseLine(l, token.Position{Filename: "x.go", Line: i + 1})
			require.NoError(t, err)
			require.True(t, ok)
			out = append(out, d)
		}
		return out
	}

	t.Run("groups by kind", func(t *testing.T) {
		s, err := Collect(parse(t,
			`//hubdoc:method verb:"get"`,
			`//hubdoc:arg user description:"who"`,
			`//hubdoc:hidden text`,
		))
		require.NoError(t, err)
		require.NotNil(t, s.Method)
		assert.Nil(t, s.Hub)
		assert.False(t, s.Hidden)
		assert.Contains(t, s.Args, "user")
		assert.Contains(t, s.HiddenParams, "text")
		assert.False(t, s.Empty())
	})

	t.Run("bare hidden", func(t *testing.T) {
		s, err := Collect(parse(t, "//hubdoc:hidden"))
		require.NoError(t, err)
		assert.True(t, s.Hidden)
	})

	t.Run("empty", func(t *testing.T) {
		s, err := Collect(nil)
		require.NoError(t, err)
		assert.True(t, s.Empty())
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		for _, lines := range [][]string{
			{"//hubdoc:hub", "//hubdoc:hub"},
			{"//hubdoc:method", "//hubdoc:method"},
			{"//hubdoc:arg a", "//hubdoc:arg a"},
		} {
			_, err := Collect(parse(t, lines...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "duplicate")
		}
	})
}
