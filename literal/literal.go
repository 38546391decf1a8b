// Package literal compiles a JSON-literal-like surface syntax into
// jsonmatch matcher trees, so expected shapes can be written inline the
// way the document itself would be:
//
//	m, err := literal.Compile(`{
//	    "id": uuid,
//	    "name": "Alice",
//	    "port": u16,
//	    "created_at": recent,
//	    ...
//	}`)
//
// Bare identifiers in value position name matchers (built in: any,
// notnull, uuid, u16, u16string, recent); WithMatcher binds custom
// ones. Object keys may be bare identifiers. A trailing "..." member
// marks the object as tolerating unexpected keys. Everything else is
// plain JSON and compiles to exact-match literals.
package literal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jacoelho/jsonmatch"
)

var (
	// ErrSyntax reports malformed surface syntax.
	ErrSyntax = errors.New("invalid matcher literal")
	// ErrUnknownMatcher reports an identifier with no bound matcher.
	ErrUnknownMatcher = errors.New("unknown matcher")
)

// builtins construct fresh matchers per compilation, so time-relative
// windows are anchored at compile time.
var builtins = map[string]func() jsonmatch.Matcher{
	"any":       func() jsonmatch.Matcher { return jsonmatch.Any() },
	"notnull":   func() jsonmatch.Matcher { return jsonmatch.NotNull() },
	"uuid":      func() jsonmatch.Matcher { return jsonmatch.UUID() },
	"u16":       func() jsonmatch.Matcher { return jsonmatch.U16() },
	"u16string": func() jsonmatch.Matcher { return jsonmatch.U16String() },
	"recent":    func() jsonmatch.Matcher { return jsonmatch.RecentUTC() },
}

// Option configures a compilation.
type Option func(*compiler)

// WithMatcher binds an identifier to a matcher for this compilation.
// User bindings shadow built-in names.
func WithMatcher(name string, matcher jsonmatch.Matcher) Option {
	return func(c *compiler) {
		c.bindings[name] = matcher
	}
}

// Compile translates the surface syntax into a matcher tree.
func Compile(src string, opts ...Option) (jsonmatch.Matcher, error) {
	c := &compiler{bindings: make(map[string]jsonmatch.Matcher)}
	for _, opt := range opts {
		opt(c)
	}

	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	c.tokens = tokens

	matcher, err := c.value()
	if err != nil {
		return nil, err
	}
	if trailing := c.peek(); trailing.kind != tokenEOF {
		return nil, fmt.Errorf("%w: unexpected trailing input at offset %d", ErrSyntax, trailing.offset)
	}
	return matcher, nil
}

// MustCompile is Compile that panics on error, for fixed expressions in
// tests.
func MustCompile(src string, opts ...Option) jsonmatch.Matcher {
	matcher, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return matcher
}

type compiler struct {
	tokens   []token
	pos      int
	bindings map[string]jsonmatch.Matcher
}

func (c *compiler) peek() token {
	return c.tokens[c.pos]
}

func (c *compiler) next() token {
	t := c.tokens[c.pos]
	if t.kind != tokenEOF {
		c.pos++
	}
	return t
}

func (c *compiler) expect(kind tokenKind, what string) (token, error) {
	t := c.next()
	if t.kind != kind {
		return token{}, fmt.Errorf("%w: expected %s at offset %d", ErrSyntax, what, t.offset)
	}
	return t, nil
}

func (c *compiler) value() (jsonmatch.Matcher, error) {
	t := c.next()
	switch t.kind {
	case tokenLeftBrace:
		return c.object()
	case tokenLeftBracket:
		return c.array()
	case tokenString:
		return jsonmatch.String(t.text), nil
	case tokenNumber:
		return numberMatcher(t)
	case tokenIdent:
		return c.identifier(t)
	default:
		return nil, fmt.Errorf("%w: unexpected token at offset %d", ErrSyntax, t.offset)
	}
}

func (c *compiler) identifier(t token) (jsonmatch.Matcher, error) {
	switch t.text {
	case "null":
		return jsonmatch.Null(), nil
	case "true":
		return jsonmatch.Boolean(true), nil
	case "false":
		return jsonmatch.Boolean(false), nil
	}
	if bound, ok := c.bindings[t.text]; ok {
		return bound, nil
	}
	if builtin, ok := builtins[t.text]; ok {
		return builtin(), nil
	}
	return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownMatcher, t.text, t.offset)
}

func numberMatcher(t token) (jsonmatch.Matcher, error) {
	if _, err := strconv.ParseInt(t.text, 10, 64); err == nil {
		return jsonmatch.Literal(json.Number(t.text)), nil
	}
	if _, err := strconv.ParseFloat(t.text, 64); err != nil {
		return nil, fmt.Errorf("%w: malformed number %q at offset %d", ErrSyntax, t.text, t.offset)
	}
	return jsonmatch.Literal(json.Number(t.text)), nil
}

func (c *compiler) array() (jsonmatch.Matcher, error) {
	matcher := jsonmatch.Array()
	if c.peek().kind == tokenRightBracket {
		c.next()
		return matcher, nil
	}

	for {
		element, err := c.value()
		if err != nil {
			return nil, err
		}
		matcher.Element(element)

		t := c.next()
		switch t.kind {
		case tokenComma:
		case tokenRightBracket:
			return matcher, nil
		default:
			return nil, fmt.Errorf("%w: expected , or ] at offset %d", ErrSyntax, t.offset)
		}
	}
}

func (c *compiler) object() (jsonmatch.Matcher, error) {
	matcher := jsonmatch.Object()
	if c.peek().kind == tokenRightBrace {
		c.next()
		return matcher, nil
	}

	for {
		t := c.next()
		if t.kind == tokenEllipsis {
			// "..." tolerates unexpected keys and must close the body.
			if _, err := c.expect(tokenRightBrace, "} after ..."); err != nil {
				return nil, err
			}
			return matcher.AllowUnexpectedKeys(), nil
		}
		if t.kind != tokenString && t.kind != tokenIdent {
			return nil, fmt.Errorf("%w: expected object key at offset %d", ErrSyntax, t.offset)
		}

		if _, err := c.expect(tokenColon, ":"); err != nil {
			return nil, err
		}
		field, err := c.value()
		if err != nil {
			return nil, err
		}
		matcher.Field(t.text, field)

		t = c.next()
		switch t.kind {
		case tokenComma:
		case tokenRightBrace:
			return matcher, nil
		default:
			return nil, fmt.Errorf("%w: expected , or } at offset %d", ErrSyntax, t.offset)
		}
	}
}
