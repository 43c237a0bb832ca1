package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"models":       "Models",
		"user_profile": "UserProfile",
		"api-client":   "ApiClient",
		"Message":      "Message",
		"chat.v1":      "ChatV1",
	}
	for in, want := range tests {
		assert.Equal(t, want, toPascalCase(in), in)
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "user_profile", toSnakeCase("UserProfile"))
	assert.Equal(t, "chat_v1", toSnakeCase("chat.v1"))
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"Page_User":       "Page_User",
		"map[string]User": "map_string_User",
		"[]*User":         "User",
		"a  b":            "a_b",
		"chat.Message":    "chat.Message",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "github.com_org_chat", sanitizePath("github.com/org/chat"))
}
