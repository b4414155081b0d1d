// Package render turns a wired scenario into provisioning script text.
//
// Emission is split into a reusable indentation-aware line builder and
// the Vagrantfile-specific rendering on top of it. Output is stable:
// the same wired scenario always produces byte-identical text.
package render

import "strings"

// IndentStyle selects the indentation unit prepended to each line.
type IndentStyle int

const (
	// Spaces indents with a configurable number of spaces per level.
	Spaces IndentStyle = iota
	// Tabs indents with one tab per level.
	Tabs
)

// defaultWidth is the space count per indentation level.
const defaultWidth = 4

// Builder accumulates lines with a tracked indentation depth. The
// fluent With* configuration is separate from the append state; String
// is the single finalize step.
type Builder struct {
	style IndentStyle
	width int
	level int
	lines []string
}

// NewBuilder returns a builder indenting with four spaces per level.
func NewBuilder() *Builder {
	return &Builder{style: Spaces, width: defaultWidth}
}

// WithStyle sets the indentation style. Switching to Tabs ignores the
// configured width.
func (b *Builder) WithStyle(style IndentStyle) *Builder {
	b.style = style
	return b
}

// WithWidth sets the number of spaces per indentation level.
func (b *Builder) WithWidth(width int) *Builder {
	b.width = width
	return b
}

// Add appends one line at the current indentation depth.
func (b *Builder) Add(line string) {
	b.lines = append(b.lines, b.indentation()+line)
}

// Indent increases the indentation depth by one level.
func (b *Builder) Indent() {
	b.level++
}

// Outdent decreases the indentation depth by one level. Depth never
// goes below zero.
func (b *Builder) Outdent() {
	if b.level > 0 {
		b.level--
	}
}

// String joins the accumulated lines with newlines.
func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}

func (b *Builder) indentation() string {
	switch b.style {
	case Tabs:
		return strings.Repeat("\t", b.level)
	default:
		return strings.Repeat(" ", b.level*b.width)
	}
}
