package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUriToPathFileScheme(t *testing.T) {
	path, err := uriToPath("file:///home/user/prog.ts")
	assert.NoError(t, err)
	assert.Equal(t, "/home/user/prog.ts", path)
}

func TestUriToPathRejectsMalformedURI(t *testing.T) {
	_, err := uriToPath("://bad uri")
	assert.Error(t, err)
}

func TestNewHandlerStartsWithEmptyContent(t *testing.T) {
	h := NewHandler()
	assert.NotNil(t, h.content)
	assert.Empty(t, h.content)
}
