package httpserve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func fakeGenerator(requested *[]string) Generator {
	return func(_ context.Context, document string) (*oas.Document, error) {
		*requested = append(*requested, document)
		switch document {
		case "broken":
			return nil, &oas.DuplicatePathError{Path: "hubs/Chat/Send"}
		case "bad":
			return nil, &oaserrors.ConfigError{Option: "discovery"}
		}
		doc := oas.NewDocument("Chat API", "1.0.0")
		doc.Info.Description = "document " + document
		return doc, nil
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var requested []string
	s := NewServer("localhost:0", "v1", fakeGenerator(&requested), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, &requested
}

func TestDocumentJSON(t *testing.T) {
	ts, requested := newTestServer(t)

	resp, err := http.Get(ts.URL + JSONPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Server"), "hubdoc/")

	var doc oas.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "document v1", doc.Info.Description)
	assert.Equal(t, []string{"v1"}, *requested)
}

func TestDocumentYAML_QueryDocument(t *testing.T) {
	ts, requested := newTestServer(t)

	resp, err := http.Get(ts.URL + YAMLPath + "?document=internal&unknown=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	var doc oas.Document
	require.NoError(t, yaml.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "document internal", doc.Info.Description)
	assert.Equal(t, []string{"internal"}, *requested)
}

func TestDocumentErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		document string
		status   int
	}{
		{"broken", http.StatusConflict},
		{"bad", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.document, func(t *testing.T) {
			resp, err := http.Get(ts.URL + JSONPath + "?document=" + tt.document)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			var body errorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDocs(t *testing.T) {
	ts, _ := newTestServer(t)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(ts.URL + "/docs")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, DocsPath, resp.Header.Get("Location"))

	resp, err = http.Get(ts.URL + DocsPath + "index.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFavicon(t *testing.T) {
	ts, requested := newTestServer(t)

	resp, err := http.Get(ts.URL + IconPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")), "favicon should be a PNG")
	assert.Empty(t, *requested, "favicon must not run a pass")
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Post(ts.URL+JSONPath, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(&oaserrors.ValidationError{}))
	assert.Equal(t, http.StatusBadRequest, statusFor(&oaserrors.PreconditionError{}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(&oaserrors.LoadError{}))
	assert.Equal(t, 499, statusFor(context.Canceled))
}
