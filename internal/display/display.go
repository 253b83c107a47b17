// Package display models the page the bootstrap writes status text into.
// Elements are optional; writers look them up once and skip when absent.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/Dhanuzh/feurboot/internal/log"
)

// Element ids on the bootstrap page.
const (
	AppTitle       = "app-title"
	AppMessage     = "app-message"
	LoadingMessage = "loading-message"
)

// Element is a text element.
type Element interface {
	SetText(text string)
}

// Document looks elements up by id.
type Document interface {
	Element(id string) (Element, bool)
}

// Slot is an element bound once at startup. Writes to a missing element are
// skipped silently; the lookup logs a single diagnostic.
type Slot struct {
	id string
	el Element
}

// Bind looks id up in doc. A nil doc behaves as an empty page.
func Bind(doc Document, id string, logger *log.Logger) *Slot {
	s := &Slot{id: id}
	if doc != nil {
		if el, ok := doc.Element(id); ok && el != nil {
			s.el = el
			return s
		}
	}
	log.Or(logger).Error("could not find element", "element", id)
	return s
}

// ID returns the element id.
func (s *Slot) ID() string { return s.id }

// Present reports whether the element exists.
func (s *Slot) Present() bool { return s != nil && s.el != nil }

// Set writes text when the element exists.
func (s *Slot) Set(text string) {
	if !s.Present() {
		return
	}
	s.el.SetText(text)
}

// Page is an in-memory Document. Each element keeps its write history.
type Page struct {
	mu    sync.Mutex
	nodes map[string]*Node
}

// NewPage creates a page holding the given element ids.
func NewPage(ids ...string) *Page {
	p := &Page{nodes: make(map[string]*Node, len(ids))}
	for _, id := range ids {
		p.nodes[id] = &Node{}
	}
	return p
}

// Element implements Document.
func (p *Page) Element(id string) (Element, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, ok := p.nodes[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// Node returns the node for id, or nil.
func (p *Page) Node(id string) *Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nodes[id]
}

// Node is a text element on a Page.
type Node struct {
	mu      sync.Mutex
	text    string
	history []string
}

// SetText implements Element.
func (n *Node) SetText(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.text = text
	n.history = append(n.history, text)
}

// Text returns the current text.
func (n *Node) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

// History returns every text written, oldest first.
func (n *Node) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

// Writer is a Document that prints every text write as a line, for runs
// without an interactive terminal.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	ids map[string]bool
}

// NewWriter creates a Writer exposing the given element ids.
func NewWriter(w io.Writer, ids ...string) *Writer {
	wr := &Writer{w: w, ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		wr.ids[id] = true
	}
	return wr
}

// Element implements Document.
func (w *Writer) Element(id string) (Element, bool) {
	if !w.ids[id] {
		return nil, false
	}
	return lineElement{w: w}, true
}

type lineElement struct{ w *Writer }

func (e lineElement) SetText(text string) {
	e.w.mu.Lock()
	defer e.w.mu.Unlock()
	fmt.Fprintln(e.w.w, text)
}
