package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateParams(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "hubs/Chat/SendMessage", want: nil},
		{path: "hubs/{hubName}/SendMessage", want: []string{"hubName"}},
		{path: "{tenant}/hubs/{hubName}/Join", want: []string{"tenant", "hubName"}},
		{path: "hubs/{}/Join", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateParams(tt.path))
		})
	}
}
