// Package fzf offers a fuzzy picker over the notes directory with a rendered
// markdown preview, for choosing a note before the editor starts.
package fzf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/inkwell-md/inkwell/internal/bridge"
	"github.com/inkwell-md/inkwell/internal/note"
)

type FuzzyFinder struct {
	bridge *bridge.Bridge
	Header string
	names  []string
}

func NewFuzzyFinder(b *bridge.Bridge, header string) *FuzzyFinder {
	return &FuzzyFinder{bridge: b, Header: header}
}

// Run lets the user pick a note and returns its name relative to the notes
// directory.
func (f *FuzzyFinder) Run() (string, error) {
	names, err := f.bridge.ListFiles()
	if err != nil {
		return "", fmt.Errorf("error listing files: %w", err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no notes found in %s", f.bridge.Dir())
	}
	f.names = names

	idx, err := f.fuzzySelect()
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no file selected")
		}
		return "", err
	}
	return f.names[idx], nil
}

func (f *FuzzyFinder) fuzzySelect() (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(f.names))
	for i, name := range f.names {
		raw, err := os.ReadFile(filepath.Join(f.bridge.Dir(), filepath.FromSlash(name)))
		if err != nil {
			labels[i] = name
			continue
		}
		n := note.Note{Name: name, Text: string(raw)}
		labels[i] = fmt.Sprintf("%s (%s)", n.Title(), name)
	}

	return fuzzyfinder.Find(f.names, func(i int) string {
		return labels[i]
	}, options...)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	raw, err := os.ReadFile(filepath.Join(f.bridge.Dir(), filepath.FromSlash(f.names[i])))
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(raw))
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}
