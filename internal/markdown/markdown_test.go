package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	t.Parallel()

	got := string(Render("A *bright* transient."))
	require.Contains(t, got, "<em>bright</em>")
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	got := string(Render(`hello <script>alert("x")</script> world`))
	require.NotContains(t, got, "<script")
	require.Contains(t, got, "hello")
}

func TestRenderLinksGetNoFollow(t *testing.T) {
	t.Parallel()

	got := string(Render("[TNS entry](https://example.org/tns)"))
	require.Contains(t, got, `href="https://example.org/tns"`)
	require.True(t, strings.Contains(got, "nofollow"))
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, string(Render("")))
}
