package errors

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"minic/internal/ast"
)

// CompilerError is a scanner or parser diagnostic prepared for display.
type CompilerError struct {
	Code     string
	Message  string
	Source   string // "scanner" or "parser"
	Position ast.Position
	Length   int    // runes to underline
	Label    string // printed after the underline, e.g. "expected ';'"

	Suggestions []Suggestion
	Notes       []string
	Help        string
}

// Suggestion is a proposed fix. A non-empty Insert is the text to add at the
// error position; the reporter previews the patched line.
type Suggestion struct {
	Message string
	Insert  string
}

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	gutterStyle = color.New(color.Faint)
	lineStyle   = color.New(color.Bold)
	fixStyle    = color.New(color.FgCyan)
	noteStyle   = color.New(color.FgBlue)
	helpStyle   = color.New(color.FgGreen)
)

// ErrorReporter renders CompilerErrors against the source they refer to.
type ErrorReporter struct {
	filename string
	lines    []string
	context  bool
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
		context:  true,
	}
}

// SetContext toggles the lines printed before and after the error line.
func (er *ErrorReporter) SetContext(show bool) {
	er.context = show
}

// FormatAll formats errs in order. When limit is positive at most limit
// errors are printed and the rest are counted. A summary line follows.
func (er *ErrorReporter) FormatAll(errs []CompilerError, limit int) string {
	if len(errs) == 0 {
		return ""
	}

	n := len(errs)
	if limit > 0 {
		n = min(n, limit)
	}

	var b strings.Builder
	for _, err := range errs[:n] {
		b.WriteString(er.FormatError(err))
	}
	if hidden := len(errs) - n; hidden > 0 {
		b.WriteString(gutterStyle.Sprintf("... %d more %s not shown", hidden, plural(hidden, "error", "errors")))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s: could not parse %s due to %d previous %s\n",
		errorStyle.Sprint("error"), er.filename, len(errs), plural(len(errs), "error", "errors"))
	return b.String()
}

// FormatError renders one error:
//
//	error[E0106]: expected ';', found 'float'
//	   --> main.c:1:10
//	   │
//	 1 │ int x = 5
//	   │          ^ expected ';'
//	 2 │ float y = 3.14;
//	   │
//	   = parser: A required token is missing
//	   = try: add ';' here
//	   │
//	 1 │ int x = 5;
//	   │          +
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	line := err.Position.Line
	s := snippet{
		out:   &b,
		width: max(2, len(strconv.Itoa(line+1))),
	}

	title := "error"
	if err.Code != "" {
		title += "[" + err.Code + "]"
	}
	fmt.Fprintf(&b, "%s: %s\n", errorStyle.Sprint(title), err.Message)

	filename := er.filename
	if err.Position.Filename != "" {
		filename = err.Position.Filename
	}
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", s.pad(), gutterStyle.Sprint("-->"), filename, line, err.Position.Column)

	if text, ok := er.line(line); ok {
		s.rule()
		if prev, ok := er.line(line - 1); ok && er.context {
			s.source(line-1, prev, false)
		}
		s.source(line, text, true)
		s.mark(err.Position.Column, max(1, err.Length), "^", err.Label, errorStyle)
		if next, ok := er.line(line + 1); ok && er.context {
			s.source(line+1, next, false)
		}
	}

	s.rule()
	if desc := GetErrorDescription(err.Code); desc != "" {
		s.footer(gutterStyle, orDefault(err.Source, "minic"), desc)
	}
	for _, sug := range err.Suggestions {
		s.footer(fixStyle, "try", sug.Message)
		if text, ok := er.line(line); ok && sug.Insert != "" {
			s.rule()
			s.source(line, insertAt(text, err.Position.Column, sug.Insert), true)
			s.mark(err.Position.Column, utf8.RuneCountInString(sug.Insert), "+", "", fixStyle)
		}
	}
	for _, note := range err.Notes {
		s.footer(noteStyle, "note", note)
	}
	if err.Help != "" {
		s.footer(helpStyle, "help", err.Help)
	}

	b.WriteByte('\n')
	return b.String()
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return strings.TrimSuffix(er.lines[n-1], "\r"), true
}

// snippet writes the gutter-aligned lines of one error.
type snippet struct {
	out   *strings.Builder
	width int
}

func (s snippet) pad() string {
	return strings.Repeat(" ", s.width+1)
}

func (s snippet) rule() {
	fmt.Fprintf(s.out, "%s%s\n", s.pad(), gutterStyle.Sprint("│"))
}

func (s snippet) source(n int, text string, primary bool) {
	num := fmt.Sprintf("%*d ", s.width, n)
	if primary {
		num = lineStyle.Sprint(num)
	} else {
		num = gutterStyle.Sprint(num)
	}
	fmt.Fprintf(s.out, "%s%s %s\n", num, gutterStyle.Sprint("│"), text)
}

func (s snippet) mark(column, length int, glyph, label string, style *color.Color) {
	fmt.Fprintf(s.out, "%s%s %s\n", s.pad(), gutterStyle.Sprint("│"), underline(column, length, glyph, label, style))
}

func (s snippet) footer(style *color.Color, tag, text string) {
	fmt.Fprintf(s.out, "%s%s %s\n", s.pad(), style.Sprintf("= %s:", tag), text)
}

// underline repeats glyph length times under column, followed by label.
func underline(column, length int, glyph, label string, style *color.Color) string {
	out := strings.Repeat(" ", max(0, column-1)) + style.Sprint(strings.Repeat(glyph, max(1, length)))
	if label != "" {
		out += " " + style.Sprint(label)
	}
	return out
}

// insertAt inserts text before the rune at 1-based column.
func insertAt(line string, column int, text string) string {
	i := 0
	for c := 1; c < column && i < len(line); c++ {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return line[:i] + text + line[i:]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
