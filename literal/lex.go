package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLeftBrace
	tokenRightBrace
	tokenLeftBracket
	tokenRightBracket
	tokenColon
	tokenComma
	tokenEllipsis
	tokenString
	tokenNumber
	tokenIdent
)

// token is a single lexical element with its byte offset in the source.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

func tokenize(src string) ([]token, error) {
	var tokens []token
	i := 0

	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{':
			tokens = append(tokens, token{kind: tokenLeftBrace, offset: i})
			i++
		case c == '}':
			tokens = append(tokens, token{kind: tokenRightBrace, offset: i})
			i++
		case c == '[':
			tokens = append(tokens, token{kind: tokenLeftBracket, offset: i})
			i++
		case c == ']':
			tokens = append(tokens, token{kind: tokenRightBracket, offset: i})
			i++
		case c == ':':
			tokens = append(tokens, token{kind: tokenColon, offset: i})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tokenComma, offset: i})
			i++
		case strings.HasPrefix(src[i:], "..."):
			tokens = append(tokens, token{kind: tokenEllipsis, offset: i})
			i += 3
		case c == '"':
			decoded, advance, err := readString(src[i:])
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d", err, i)
			}
			tokens = append(tokens, token{kind: tokenString, text: decoded, offset: i})
			i += advance
		case c == '-' || (c >= '0' && c <= '9'):
			raw, advance := readNumber(src[i:])
			tokens = append(tokens, token{kind: tokenNumber, text: raw, offset: i})
			i += advance
		case isIdentStart(c):
			raw, advance := readIdentifier(src[i:])
			tokens = append(tokens, token{kind: tokenIdent, text: raw, offset: i})
			i += advance
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, i)
		}
	}

	return append(tokens, token{kind: tokenEOF, offset: len(src)}), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func readIdentifier(src string) (string, int) {
	i := 1
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}
	return src[:i], i
}

// readNumber consumes a JSON number token without validating it; the
// parser validates via strconv so malformed numbers carry an offset.
func readNumber(src string) (string, int) {
	i := 0
	if src[i] == '-' {
		i++
	}
	for i < len(src) && (src[i] >= '0' && src[i] <= '9' ||
		src[i] == '.' || src[i] == 'e' || src[i] == 'E' ||
		src[i] == '+' || src[i] == '-') {
		i++
	}
	return src[:i], i
}

// readString decodes a JSON string literal starting at the opening
// quote, returning the decoded value and the bytes consumed.
func readString(src string) (string, int, error) {
	var out strings.Builder
	out.Grow(len(src))

	for i := 1; i < len(src); i++ {
		current := src[i]
		switch {
		case current == '"':
			return out.String(), i + 1, nil
		case current != '\\':
			out.WriteByte(current)
		default:
			i++
			if i >= len(src) {
				return "", 0, fmt.Errorf("%w: unterminated escape", ErrSyntax)
			}
			switch src[i] {
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			case '/':
				out.WriteByte('/')
			case 'b':
				out.WriteByte('\b')
			case 'f':
				out.WriteByte('\f')
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			case 'u':
				decoded, advance, err := readUnicodeEscape(src[i+1:])
				if err != nil {
					return "", 0, err
				}
				out.WriteRune(decoded)
				i += advance
			default:
				return "", 0, fmt.Errorf("%w: invalid escape \\%c", ErrSyntax, src[i])
			}
		}
	}

	return "", 0, fmt.Errorf("%w: unterminated string", ErrSyntax)
}

// readUnicodeEscape decodes the 4 hex digits after \u, pairing UTF-16
// surrogates when a second escape follows.
func readUnicodeEscape(src string) (rune, int, error) {
	if len(src) < 4 {
		return 0, 0, fmt.Errorf("%w: truncated unicode escape", ErrSyntax)
	}
	first, err := strconv.ParseUint(src[:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid unicode escape", ErrSyntax)
	}

	firstRune := rune(first)
	if utf16.IsSurrogate(firstRune) && len(src) >= 10 && src[4] == '\\' && src[5] == 'u' {
		second, secondErr := strconv.ParseUint(src[6:10], 16, 16)
		if secondErr == nil {
			if decoded := utf16.DecodeRune(firstRune, rune(second)); decoded != utf8.RuneError {
				return decoded, 10, nil
			}
		}
	}

	return firstRune, 4, nil
}
