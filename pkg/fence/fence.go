// Package fence pulls fenced code blocks out of lesson markdown.
package fence

import (
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(meta.Meta))

// Block is one fenced code block.
type Block struct {
	Marker string // first word of the info string, "" when absent
	Body   string
}

// Document is a parsed markdown source.
type Document struct {
	blocks []Block
}

// Parse reads source once. YAML front matter is consumed and never shows up
// as a block.
func Parse(source []byte) *Document {
	root := markdown.Parser().Parse(text.NewReader(source))

	doc := &Document{}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		code, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var body strings.Builder
		lines := code.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			body.Write(segment.Value(source))
		}
		doc.blocks = append(doc.blocks, Block{
			Marker: string(code.Language(source)),
			Body:   body.String(),
		})
		return ast.WalkSkipChildren, nil
	})
	return doc
}

// Blocks returns the bodies of blocks fenced with marker, in document order.
func (d *Document) Blocks(marker string) []string {
	var out []string
	for _, b := range d.blocks {
		if b.Marker == marker {
			out = append(out, b.Body)
		}
	}
	return out
}

// Code returns the newline-joined bodies of all blocks fenced with any of
// the markers. Markers are visited in the given order.
func (d *Document) Code(markers ...string) string {
	var blocks []string
	for _, marker := range markers {
		blocks = append(blocks, d.Blocks(marker)...)
	}
	return Join(blocks)
}

// Blocks is Parse(source).Blocks(marker).
func Blocks(source []byte, marker string) []string {
	return Parse(source).Blocks(marker)
}

// Join concatenates blocks with newlines.
func Join(blocks []string) string {
	return strings.Join(blocks, "\n")
}
