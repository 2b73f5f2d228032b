package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer, extension.Linkify),
)

// RenderMarkdown converts each paragraph source to HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func RenderMarkdown(paragraphs []string) ([]string, error) {
	out := make([]string, 0, len(paragraphs))
	var buf bytes.Buffer
	for _, p := range paragraphs {
		buf.Reset()
		if err := md.Convert([]byte(p), &buf); err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(buf.String()))
	}
	return out, nil
}
