package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a piece of source code. It is used in
// errors that can be attributed to a part of the source, like lexical and
// syntax errors.
type Context struct {
	Name   string
	Source string
	Ranging

	culpritInfo *culpritInfo
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{Name: name, Source: source, Ranging: r.Range()}
}

// Precomputed information for showing the culprit range.
type culpritInfo struct {
	// Text on the culprit's line before and after the culprit itself, not
	// crossing line boundaries.
	head, tail string
	// The culprit, with a trailing newline stripped.
	culprit string
	// 1-based line numbers of the first and last culprit line.
	beginLine, endLine int
}

// Escape sequences used to highlight the culprit.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceholder = "^"
)

func (c *Context) info() *culpritInfo {
	if c.culpritInfo != nil {
		return c.culpritInfo
	}
	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := before[strings.LastIndexByte(before, '\n')+1:]
	beginLine := strings.Count(before, "\n") + 1

	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else if i := strings.IndexByte(after, '\n'); i == -1 {
		tail = after
	} else {
		tail = after[:i]
	}
	endLine := beginLine + strings.Count(culprit, "\n")

	c.culpritInfo = &culpritInfo{head, tail, culprit, beginLine, endLine}
	return c.culpritInfo
}

// Show shows the context: the name and line range on one line, the
// relevant source with the culprit highlighted on the next.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.lineRange() + "\n" + indent + c.relevantSource(indent)
}

// ShowCompact is like Show, but keeps the position description and the
// source excerpt on the same line.
func (c *Context) ShowCompact(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	// Continuation lines align with the start of the excerpt.
	return desc + c.relevantSource(indent+strings.Repeat(" ", utf8.RuneCountInString(desc)))
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	info := c.info()
	if info.beginLine == info.endLine {
		return fmt.Sprintf("line %d:", info.beginLine)
	}
	return fmt.Sprintf("line %d-%d:", info.beginLine, info.endLine)
}

func (c *Context) relevantSource(indent string) string {
	info := c.info()
	var sb strings.Builder
	sb.WriteString(info.head)

	culprit := info.culprit
	if culprit == "" {
		culprit = culpritPlaceholder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}

	sb.WriteString(info.tail)
	return sb.String()
}
