package script

// kwPrefix marks keyword arguments after preprocessing. A keyword :id
// reaches the builtins as the string "__kw_id".
const kwPrefix = "__kw_"

// preprocess rewrites scene source into something zygomys accepts:
//
//   - :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global symbol and cannot collide with user variables;
//   - a hyphen between identifier characters becomes an underscore, since
//     zygomys reads '-' as subtraction (region-count -> region_count);
//   - ; line comments become // comments.
//
// String literals (double-quoted and backtick) pass through untouched.
func preprocess(source string) string {
	p := &preprocessor{src: []byte(source), out: make([]byte, 0, len(source)+len(source)/4)}
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == '"':
			p.quoted('"', true)
		case c == '`':
			p.quoted('`', false)
		case c == ';':
			p.comment()
		case c == ':' && p.peek(1) == '=':
			p.emit(2)
		case c == ':' && isLetter(p.peek(1)):
			p.keyword()
		case c == '-' && p.pos > 0 && isIdentChar(p.src[p.pos-1]) && isLetter(p.peek(1)):
			p.out = append(p.out, '_')
			p.pos++
		default:
			p.emit(1)
		}
	}
	return string(p.out)
}

type preprocessor struct {
	src []byte
	out []byte
	pos int
}

// peek returns the byte n positions ahead, or 0 past the end.
func (p *preprocessor) peek(n int) byte {
	if p.pos+n < len(p.src) {
		return p.src[p.pos+n]
	}
	return 0
}

func (p *preprocessor) emit(n int) {
	end := p.pos + n
	if end > len(p.src) {
		end = len(p.src)
	}
	p.out = append(p.out, p.src[p.pos:end]...)
	p.pos = end
}

// quoted copies a string literal including both delimiters.
func (p *preprocessor) quoted(delim byte, escapes bool) {
	p.emit(1)
	for p.pos < len(p.src) && p.src[p.pos] != delim {
		if escapes && p.src[p.pos] == '\\' {
			p.emit(2)
			continue
		}
		p.emit(1)
	}
	p.emit(1)
}

func (p *preprocessor) comment() {
	p.out = append(p.out, '/', '/')
	for p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.emit(1)
	}
}

func (p *preprocessor) keyword() {
	start := p.pos + 1
	end := start
	for end < len(p.src) && isKeywordChar(p.src[end]) {
		end++
	}
	p.out = append(p.out, '"')
	p.out = append(p.out, kwPrefix...)
	p.out = append(p.out, p.src[start:end]...)
	p.out = append(p.out, '"')
	p.pos = end
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool { return isLetter(c) || isDigit(c) || c == '_' }

func isKeywordChar(c byte) bool { return isIdentChar(c) || c == '-' }
