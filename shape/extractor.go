package shape

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/telzey/xstruct/xserrors"
)

const (
	// defaultMaxDepth is the maximum element nesting depth.
	defaultMaxDepth = 256
	// defaultMaxAttrs is the maximum number of attributes per element.
	defaultMaxAttrs = 256
)

// Extractor parses XML documents into shape trees.
type Extractor struct {
	// MaxDepth is the maximum element nesting depth (0 = default 256).
	// Documents nesting deeper fail with a ResourceLimitError.
	MaxDepth int
	// MaxAttrs is the maximum attribute count per element (0 = default 256).
	MaxAttrs int
	// DecodeCharsets enables decoding of non-UTF-8 documents based on the
	// encoding declared in the XML prolog, using the IANA charset registry.
	DecodeCharsets bool
}

// New creates an Extractor with default settings.
func New() *Extractor {
	return &Extractor{
		MaxDepth:       defaultMaxDepth,
		MaxAttrs:       defaultMaxAttrs,
		DecodeCharsets: true,
	}
}

// Extract parses data as XML and returns its shape tree.
// Malformed XML yields a *xserrors.ParseError; the function never panics.
// Extracting the same input twice yields field-wise identical trees.
func (e *Extractor) Extract(data []byte) (*Node, error) {
	return e.extract(data, "")
}

// ExtractNamed parses like Extract and records source as the document
// identifier in any returned error.
func (e *Extractor) ExtractNamed(data []byte, source string) (*Node, error) {
	return e.extract(data, source)
}

func (e *Extractor) extract(data []byte, source string) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	if e.DecodeCharsets {
		dec.CharsetReader = charsetReader
	}

	maxDepth := limitOrDefault(e.MaxDepth, defaultMaxDepth)
	maxAttrs := limitOrDefault(e.MaxAttrs, defaultMaxAttrs)

	var root *Node
	stack := make([]*Node, 0, 16)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(source, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, &xserrors.ParseError{
					Path:    source,
					Line:    lineAt(data, dec.InputOffset()),
					Message: "multiple root elements",
				}
			}
			if len(stack) >= maxDepth {
				return nil, &xserrors.ResourceLimitError{Limit: "depth", Value: maxDepth, Path: source}
			}
			node, err := buildNode(t, maxAttrs, source)
			if err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			// The decoder guarantees every EndElement matches an open
			// StartElement, so the stack is never empty here.
			stack = stack[:len(stack)-1]

		default:
			// CharData, Comment, ProcInst, Directive: not part of the shape.
		}
	}

	if root == nil {
		return nil, &xserrors.ParseError{Path: source, Message: "no root element"}
	}
	return root, nil
}

// buildNode creates a shape node from a start element, collecting attribute
// keys only. Namespace declarations are skipped.
func buildNode(start xml.StartElement, maxAttrs int, source string) (*Node, error) {
	node := &Node{Name: start.Name.Local}
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		node.AttrKeys = append(node.AttrKeys, attr.Name.Local)
	}
	if len(node.AttrKeys) > maxAttrs {
		return nil, &xserrors.ResourceLimitError{Limit: "attributes", Value: maxAttrs, Path: source}
	}
	node.AttrKeys = sortDedup(node.AttrKeys)
	return node, nil
}

// parseError converts a decoder error into a ParseError, extracting line
// information when the underlying error is an xml.SyntaxError.
func parseError(source string, err error) *xserrors.ParseError {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &xserrors.ParseError{
			Path:    source,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
		}
	}
	return &xserrors.ParseError{Path: source, Message: err.Error(), Cause: err}
}

// lineAt returns the 1-based line number for a byte offset into data.
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}

func limitOrDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// charsetReader decodes non-UTF-8 input based on the declared charset name,
// resolved through the IANA registry.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
