// Package note defines the document value passed between the editor core and
// the local bridge.
package note

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Note is immutable data: every edit produces a new value. LastModified nil
// means the note is not yet bound to a device file, so saving it must go
// through the save-as path; non-nil means writes overwrite in place.
type Note struct {
	Name         string     `json:"name"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	Text         string     `json:"text"`
}

const DefaultName = "untitled.md"

func Empty() Note {
	return Note{Name: DefaultName}
}

var errNoName = errors.New("note payload has no name")

// Decode parses a bridge payload into a Note. A payload without a name is as
// useless as a malformed one and is rejected the same way.
func Decode(raw []byte) (Note, error) {
	var n Note
	if err := json.Unmarshal(raw, &n); err != nil {
		return Note{}, err
	}
	if n.Name == "" {
		return Note{}, errNoName
	}
	return n, nil
}

func (n Note) Encode() ([]byte, error) {
	return json.Marshal(n)
}

func (n Note) WithText(text string) Note {
	n.Text = text
	return n
}

// Bound reports whether the note is attached to a device file.
func (n Note) Bound() bool {
	return n.LastModified != nil
}

// Basename strips any directory prefix and the extension from a filename:
// "notes/plan.md" becomes "plan".
func Basename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TemplateText is the seed content for a freshly built note.
func TemplateText(name string) string {
	return "# " + Basename(name)
}

// Title returns the text of the first heading in the note, or the basename
// when the document has none.
func (n Note) Title() string {
	source := []byte(n.Text)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := node.(*ast.Heading); ok {
			title = strings.TrimSpace(string(heading.Text(source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if title == "" {
		return Basename(n.Name)
	}
	return title
}
