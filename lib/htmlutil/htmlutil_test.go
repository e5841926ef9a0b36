package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<div>hello <b>nested</b> world</div>`,
	))
	require.NoError(t, err)

	require.Contains(t, GetText(doc), "hello nested world")
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b", CleanText("  a \t\n  b  "))
}
