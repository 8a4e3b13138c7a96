package htmltext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractor_MainContent(t *testing.T) {
	page := `<html><head><title>Page</title><style>p { color: red }</style></head>
<body>
<nav>Home About</nav>
<main>
  <h1>Title here</h1>
  <p>First paragraph <b>bold</b>
     text.</p>
  <script>alert("x")</script>
  <ul><li>One item</li></ul>
  <div>Loose text</div>
</main>
<footer>Copyright</footer>
</body></html>`

	text, err := NewExtractor().Extract(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, "Title here\n\nFirst paragraph bold text.\n\nOne item\n\nLoose text", text)
}

func TestExtractor_FallsBackToBody(t *testing.T) {
	page := `<html><body><header>Menu</header><p>Only paragraph.</p><p>Second one.</p></body></html>`

	text, err := NewExtractor().Extract(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, "Only paragraph.\n\nSecond one.", text)
}

func TestExtractor_KeepsTextAroundNestedBlocks(t *testing.T) {
	page := `<html><body><div>Intro <em>words</em> <p>Nested paragraph.</p> Outro</div></body></html>`

	text, err := NewExtractor().Extract(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, "Intro words\n\nNested paragraph.\n\nOutro", text)
}

func TestExtractor_PlainTextWithoutBlocks(t *testing.T) {
	text, err := NewExtractor().Extract(strings.NewReader("just   some <span>inline</span> words"))
	require.NoError(t, err)
	require.Equal(t, "just some inline words", text)
}
