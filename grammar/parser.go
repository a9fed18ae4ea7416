package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type Kind int

const (
	Include Kind = iota
	Define
	Ifdef
	Ifndef
	Undef
	Else
	Endif
)

// Directive is a decoded preprocessor line.
type Directive struct {
	Kind   Kind
	Path   string // include target without delimiters
	System bool   // <...> include
	Name   string // macro name
	Value  string // define replacement text, comments removed
}

// SyntaxError reports a malformed directive line. Column is 1-based within
// the line text.
type SyntaxError struct {
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: %s", e.Column, e.Message)
}

// ErrMissingIncludePath is returned for an #include with nothing to include.
var ErrMissingIncludePath = errors.New(`#include expects "FILENAME" or <FILENAME>`)

var directiveParser = participle.MustBuild[directiveLine](
	participle.Lexer(DirectiveLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseDirective decodes one preprocessor line such as "#include <stdio.h>".
func ParseDirective(text string) (*Directive, error) {
	line, err := directiveParser.ParseString("", text)
	if err != nil {
		if isBareInclude(text) {
			return nil, ErrMissingIncludePath
		}
		var pe participle.Error
		if errors.As(err, &pe) {
			return nil, &SyntaxError{Column: pe.Position().Column, Message: pe.Message()}
		}
		return nil, &SyntaxError{Column: 1, Message: err.Error()}
	}

	body := line.Body
	switch {
	case body.Include != nil:
		return decodeInclude(body.Include)
	case body.Define != nil:
		name := body.Define.Name
		rest := text[name.Pos.Offset+len(name.Value):]
		return &Directive{
			Kind:  Define,
			Name:  name.Value,
			Value: strings.TrimSpace(stripComments(rest)),
		}, nil
	case body.Ifdef != nil:
		return &Directive{Kind: Ifdef, Name: *body.Ifdef}, nil
	case body.Ifndef != nil:
		return &Directive{Kind: Ifndef, Name: *body.Ifndef}, nil
	case body.Undef != nil:
		return &Directive{Kind: Undef, Name: *body.Undef}, nil
	case body.Else:
		return &Directive{Kind: Else}, nil
	case body.Endif:
		return &Directive{Kind: Endif}, nil
	}
	return nil, &SyntaxError{Column: 1, Message: "unknown directive"}
}

func decodeInclude(inc *includeDirective) (*Directive, error) {
	if inc.System != nil {
		path := strings.TrimSuffix(strings.TrimPrefix(*inc.System, "<"), ">")
		return &Directive{Kind: Include, Path: path, System: true}, nil
	}
	path, err := strconv.Unquote(*inc.Local)
	if err != nil {
		path = strings.Trim(*inc.Local, `"`)
	}
	return &Directive{Kind: Include, Path: path}, nil
}

func isBareInclude(text string) bool {
	rest := strings.TrimSpace(stripComments(text))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "#"))
	return rest == "include"
}

// stripComments removes // and /* */ comments that are not inside a string.
func stripComments(s string) string {
	var b strings.Builder
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) {
			if s[i+1] == '/' {
				break
			}
			if s[i+1] == '*' {
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					break
				}
				b.WriteByte(' ')
				i += end + 3
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
