package extract

import (
	"io"
	"regexp"
	"strings"
)

// Document is one corpus entry found between heavy separators.
type Document struct {
	// Title is the content line of the heavy separator that opened the
	// document. Empty for text before the first separator.
	Title string
	Text  string
}

var (
	// heavySepRe matches a "==" rule, one content line and another rule.
	heavySepRe = regexp.MustCompile(`==+\n(.*)\n==+`)
	// lightSepRe matches a "---" rule with its surrounding newlines.
	lightSepRe = regexp.MustCompile(`\n*---+\n+`)
)

// SplitDocuments splits the corpus on heavy separators. Separators are
// removed; text before, between and after them becomes the documents, in
// order. Empty documents are kept. Without any separator the whole input is a
// single document.
func SplitDocuments(input string) []Document {
	matches := heavySepRe.FindAllStringSubmatchIndex(input, -1)
	docs := make([]Document, 0, len(matches)+1)
	prev := 0
	title := ""
	for _, m := range matches {
		docs = append(docs, Document{Title: title, Text: input[prev:m[0]]})
		title = input[m[2]:m[3]]
		prev = m[1]
	}
	docs = append(docs, Document{Title: title, Text: input[prev:]})
	return docs
}

// Header returns the part of doc before its first light separator, or the
// whole doc when there is none. ok is false for an empty document, which has
// no segments at all.
func Header(doc string) (header string, ok bool) {
	if doc == "" {
		return "", false
	}
	if loc := lightSepRe.FindStringIndex(doc); loc != nil {
		return doc[:loc[0]], true
	}
	return doc, true
}

// Extract runs the whole transformation over a buffered corpus and returns
// the trimmed, non-empty headers in document order.
func Extract(input string) []string {
	var out []string
	for _, d := range SplitDocuments(input) {
		if h, ok := headerText(d); ok {
			out = append(out, h)
		}
	}
	return out
}

func headerText(d Document) (string, bool) {
	h, ok := Header(d.Text)
	if !ok {
		return "", false
	}
	h = strings.TrimSpace(h)
	return h, h != ""
}

// Format joins headers with one blank line between entries and terminates
// the result with a newline. No headers yields a lone newline.
func Format(headers []string) string {
	return strings.Join(headers, "\n\n") + "\n"
}

// Write formats headers and writes them to w.
func Write(w io.Writer, headers []string) error {
	_, err := io.WriteString(w, Format(headers))
	return err
}
