package prompts

import "strings"

// Substitute replaces $name and ${name} occurrences in template with values
// from vars. "$$" escapes a literal dollar sign. Names without a value keep
// their original spelling, braces included, so gaps in the variable set stay
// visible in the rendered prompt.
func Substitute(template string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(template) {
			b.WriteByte('$')
			break
		}

		switch next := template[i+1]; {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			name := template[i+2 : i+2+end]
			if val, ok := vars[name]; ok && isIdent(name) {
				b.WriteString(val)
			} else {
				b.WriteString(template[i : i+2+end+1])
			}
			i += 2 + end + 1
		case isIdentStart(next):
			j := i + 1
			for j < len(template) && isIdentByte(template[j]) {
				j++
			}
			name := template[i+1 : j]
			if val, ok := vars[name]; ok {
				b.WriteString(val)
			} else {
				b.WriteString(template[i:j])
			}
			i = j
		default:
			b.WriteByte('$')
			i++
		}
	}
	return b.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}
