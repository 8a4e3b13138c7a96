// Package htmltext extracts the main prose of an HTML page.
package htmltext

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
)

// Page chrome that never holds article prose.
const chromeSelector = "script, style, noscript, template, iframe, svg, nav, header, footer, aside, form"

// Elements kept as text blocks.
var blockElements = []string{
	"p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote", "pre",
	"td", "th", "dt", "dd", "figcaption", "div",
}

// Extractor is safe for concurrent use.
type Extractor struct {
	policy *bluemonday.Policy
	blocks map[string]bool
}

// NewExtractor returns an extractor that keeps block-level text only.
func NewExtractor() ports.TextExtractor {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(blockElements...)
	return &Extractor{
		policy: policy,
		blocks: lo.SliceToMap(blockElements, func(tag string) (string, bool) { return tag, true }),
	}
}

// Extract prefers <main> or <article> content and drops navigation, scripts
// and other page chrome. Each block becomes one paragraph; text sitting
// directly in a block around nested blocks becomes paragraphs of its own.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find(chromeSelector).Remove()

	root := doc.Find("main").First()
	if root.Length() == 0 {
		root = doc.Find("article").First()
	}
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	markup, err := goquery.OuterHtml(root)
	if err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}

	clean, err := goquery.NewDocumentFromReader(strings.NewReader(e.policy.Sanitize(markup)))
	if err != nil {
		return "", fmt.Errorf("failed to parse sanitized html: %w", err)
	}

	blocks := e.collect(clean.Find("body"), make([]string, 0))
	if len(blocks) == 0 {
		return collapse(clean.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

// collect walks the children of s in document order. Runs of text between
// block elements are flushed as one paragraph each.
func (e *Extractor) collect(s *goquery.Selection, blocks []string) []string {
	var pending strings.Builder
	flush := func() {
		if text := collapse(pending.String()); text != "" {
			blocks = append(blocks, text)
		}
		pending.Reset()
	}

	s.Contents().Each(func(_ int, child *goquery.Selection) {
		if e.blocks[goquery.NodeName(child)] {
			flush()
			blocks = e.collect(child, blocks)
			return
		}
		pending.WriteString(child.Text())
	})
	flush()
	return blocks
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
