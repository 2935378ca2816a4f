// Package linter checks TEI XML documents against a small set of
// encoding-practice rules. Findings are collected into a Report rather
// than returned as errors: a document that fails to parse yields a
// Report carrying the parse failure as a lint error.
package linter

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/telzey/xstruct/internal/severity"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Message is a single lint finding with its document position.
type Message struct {
	// Line is the 1-based line number of the finding (0 when unknown).
	Line int `json:"line"`
	// Column is the 1-based column number of the finding (0 when unknown).
	Column int `json:"column"`
	// Text describes the finding.
	Text string `json:"text"`
}

// Report collects the findings of a lint run, grouped by severity.
type Report struct {
	// Errors are rule violations that make the document invalid.
	Errors []Message `json:"errors"`
	// Warnings are encoding-practice violations that should be addressed.
	Warnings []Message `json:"warnings"`
	// Info are informational notices about the document.
	Info []Message `json:"info"`
}

func newReport() *Report {
	return &Report{
		Errors:   []Message{},
		Warnings: []Message{},
		Info:     []Message{},
	}
}

// Valid reports whether the run found no errors. Warnings and
// informational notices are allowed.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) add(sev severity.Severity, line, col int, format string, args ...any) {
	msg := Message{Line: line, Column: col, Text: fmt.Sprintf(format, args...)}
	switch sev {
	case severity.SeverityError:
		r.Errors = append(r.Errors, msg)
	case severity.SeverityWarning:
		r.Warnings = append(r.Warnings, msg)
	default:
		r.Info = append(r.Info, msg)
	}
}

// WriteText renders the report for console output: errors first, then
// warnings, then notices, followed by a one-line summary.
func (r *Report) WriteText(w io.Writer) {
	write := func(sev severity.Severity, msgs []Message) {
		for _, m := range msgs {
			if m.Line > 0 {
				fmt.Fprintf(w, "  %s at line %d, column %d: %s\n", sev, m.Line, m.Column, m.Text)
			} else {
				fmt.Fprintf(w, "  %s: %s\n", sev, m.Text)
			}
		}
	}
	write(severity.SeverityError, r.Errors)
	write(severity.SeverityWarning, r.Warnings)
	write(severity.SeverityInfo, r.Info)

	if len(r.Errors) == 0 && len(r.Warnings) == 0 && len(r.Info) == 0 {
		fmt.Fprintln(w, "no problems found")
		return
	}
	fmt.Fprintf(w, "%d errors, %d warnings, %d notices\n",
		len(r.Errors), len(r.Warnings), len(r.Info))
}

// LintFile reads path and lints its contents. The returned error covers
// IO failure only; lint findings are in the Report.
func LintFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Lint(data), nil
}

// Lint checks data against the TEI encoding rules and returns the
// findings. It never returns an error: malformed XML is reported as a
// lint error.
func Lint(data []byte) *Report {
	report := newReport()

	if bytes.HasPrefix(data, utf8BOM) {
		report.add(severity.SeverityInfo, 1, 1, "document starts with a UTF-8 byte order mark")
		data = data[len(utf8BOM):]
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var stack []string
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := 0, 0
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				line = syntaxErr.Line
			}
			report.add(severity.SeverityError, line, col, "malformed XML: %v", err)
			return report
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			line, col := tagPosition(data, dec.InputOffset())
			if !sawRoot {
				sawRoot = true
				if !strings.Contains(strings.ToLower(name), "tei") {
					report.add(severity.SeverityWarning, line, col,
						"root element <%s> does not look like a TEI document", name)
				}
			}
			switch name {
			case "pb":
				if !hasAttr(t, "ed") {
					report.add(severity.SeverityError, line, col, "<pb> element missing @ed attribute")
				}
				if !hasAttr(t, "n") {
					report.add(severity.SeverityError, line, col, "<pb> element missing @n attribute")
				}
			case "head":
				if !contains(stack, "div") {
					report.add(severity.SeverityWarning, line, col, "<head> element outside of <div>")
				}
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawRoot {
		report.add(severity.SeverityError, 0, 0, "document contains no elements")
	}
	return report
}

func hasAttr(el xml.StartElement, name string) bool {
	for _, attr := range el.Attr {
		if attr.Name.Local == name && attr.Name.Space == "" {
			return true
		}
	}
	return false
}

func contains(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}

// tagPosition maps the decoder offset at the end of a start tag back to
// the 1-based line and column of its opening angle bracket.
func tagPosition(data []byte, end int64) (line, col int) {
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	start := bytes.LastIndexByte(data[:end], '<')
	if start < 0 {
		start = 0
	}
	line = 1 + bytes.Count(data[:start], []byte{'\n'})
	lastNL := bytes.LastIndexByte(data[:start], '\n')
	col = start - lastNL
	return line, col
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
