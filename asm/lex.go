package asm

import (
	"regexp"
	"strings"
	"unicode"
)

// identRe matches label and equate names.
var identRe = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// stripComment removes a trailing ';' comment, ignoring ';' inside quotes.
func stripComment(line string) string {
	var quote byte
	for n := 0; n < len(line); n++ {
		ch := line[n]
		switch {
		case quote != 0 && ch == '\\':
			n++
		case quote != 0 && ch == quote:
			quote = 0
		case quote != 0:
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ';':
			return line[:n]
		}
	}
	return line
}

// splitTop splits s at every sep that is not inside quotes, brackets or
// parentheses. Each part is trimmed.
func splitTop(s string, sep byte) (parts []string) {
	var quote byte
	depth := 0
	start := 0
	for n := 0; n < len(s); n++ {
		ch := s[n]
		switch {
		case quote != 0 && ch == '\\':
			n++
		case quote != 0 && ch == quote:
			quote = 0
		case quote != 0:
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '(' || ch == '[':
			depth++
		case ch == ')' || ch == ']':
			depth--
		case ch == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:n]))
			start = n + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return
}

// escapes maps the character after a backslash to its value.
var escapes = map[byte]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'e':  '\033',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// unquote decodes the body of a quoted string or character literal,
// without its quotes.
func unquote(body string) (text string, ok bool) {
	var sb strings.Builder
	for n := 0; n < len(body); n++ {
		ch := body[n]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		n++
		if n >= len(body) {
			return
		}
		r, known := escapes[body[n]]
		if !known {
			return
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// cutLabel removes a leading label definition, ':name' or 'name:'.
func cutLabel(line string) (label, rest string, found bool) {
	end := strings.IndexFunc(line, unicode.IsSpace)
	if end < 0 {
		end = len(line)
	}
	word, after := line[:end], line[end:]

	switch {
	case strings.HasPrefix(word, ":"):
		label = word[1:]
	case strings.HasSuffix(word, ":"):
		label = word[:len(word)-1]
	default:
		return "", line, false
	}

	return label, strings.TrimSpace(after), true
}
