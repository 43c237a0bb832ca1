package mcpserver

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestPaginate(t *testing.T) {
	five := ints(5)

	tests := []struct {
		name          string
		items         []int
		offset, limit int
		want          []int
	}{
		{name: "default limit", items: five, want: five},
		{name: "negative limit", items: five, limit: -1, want: five},
		{name: "first page", items: five, limit: 2, want: []int{0, 1}},
		{name: "middle page", items: five, offset: 1, limit: 2, want: []int{1, 2}},
		{name: "short last page", items: five, offset: 3, limit: 10, want: []int{3, 4}},
		{name: "offset past end", items: five, offset: 5, limit: 2},
		{name: "negative offset", items: five, offset: -1, limit: 2},
		{name: "nil items", limit: 2},
		{name: "huge limit", items: ints(3), offset: 1, limit: math.MaxInt, want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}

	t.Run("caps", func(t *testing.T) {
		assert.Len(t, paginate(ints(150), 0, 0), cfg.ListLimit)
		assert.Len(t, paginate(ints(1500), 0, 1500), cfg.MaxLimit)
	})
}

func TestDetailLimit(t *testing.T) {
	assert.Equal(t, cfg.ListDetailLimit, detailLimit(0))
	assert.Equal(t, cfg.ListDetailLimit, detailLimit(-3))
	assert.Equal(t, 1, detailLimit(1))
	assert.Equal(t, 200, detailLimit(200))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](4)
	assert.Empty(t, s)
	assert.Equal(t, 4, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{
			err:  errors.New("load error in /home/dev/hubs/chat: no Go files"),
			want: "load error in <path>: no Go files",
		},
		{
			err:  fmt.Errorf("pattern /tmp/a/... matched /tmp/b"),
			want: "pattern <path> matched <path>",
		},
		{
			err:  errors.New("unsupported discovery mode"),
			want: "unsupported discovery mode",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeError(tt.err))
	}

	result := errResult(errors.New("stat /root/hubs: no such file"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}

func TestGroupAndSort(t *testing.T) {
	verbs := []string{"post", "get", "post", "put", "get", "post", "delete"}
	got := groupAndSort(verbs, func(s string) []string { return []string{s} })
	assert.Equal(t, []groupCount{
		{Key: "post", Count: 3},
		{Key: "get", Count: 2},
		{Key: "delete", Count: 1},
		{Key: "put", Count: 1},
	}, got)

	assert.Empty(t, groupAndSort([]string(nil), func(s string) []string { return []string{s} }))
}

func TestValidateGroupBy(t *testing.T) {
	allowed := []string{"hub", "verb"}
	assert.NoError(t, validateGroupBy("", true, allowed))
	assert.NoError(t, validateGroupBy("VERB", false, allowed))
	assert.ErrorContains(t, validateGroupBy("hub", true, allowed), "cannot use both")
	assert.ErrorContains(t, validateGroupBy("path", false, allowed), "valid values: hub, verb")
}

func TestMatchGlobName(t *testing.T) {
	tests := []struct {
		name, pattern string
		want          bool
	}{
		{"Chat", "", true},
		{"Chat", "chat", true},
		{"Chat", "Presence", false},
		{"ChatHub", "Chat*", true},
		{"Presence", "Chat*", false},
		{"AdminHub", "?dmin*", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlobName(tt.name, tt.pattern), "%s ~ %s", tt.name, tt.pattern)
	}
	assert.Error(t, validateGlobPattern("Chat["))
	assert.NoError(t, validateGlobPattern("Chat*"))
	assert.NoError(t, validateGlobPattern("Chat"))
}

func TestDocumentName(t *testing.T) {
	assert.Equal(t, cfg.Document, documentName(""))
	assert.Equal(t, "internal", documentName("internal"))
}
