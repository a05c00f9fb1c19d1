package syntax

import "io"

// source is a character reader with position tracking.
// The whole input is read into memory. The language is ASCII, so each
// byte is one character; bytes above 0x7f surface as unexpected characters.
type source struct {
	buf []byte

	filename string
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, byte offset)

	ch   rune // current byte, -1 for EOF
	offs int  // byte offset just past ch

	errh func(pos Pos, msg string)
}

// newSource reads src completely and positions the reader on the first character.
// The errh function is called for each error; if nil, errors are silently ignored.
func newSource(filename string, src io.Reader, errh func(pos Pos, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the first nextch
		ch:       -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		s.buf = nil
	}

	s.nextch()
	return s
}

// nextch advances to the next character and updates the position.
// (line, col) always refers to s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	s.ch = rune(s.buf[s.offs])
	s.offs++
}

// peek returns the character after s.ch without consuming it, or -1 at EOF.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	return rune(s.buf[s.offs])
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) error(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isPrint reports whether r is a printable ASCII character.
func isPrint(r rune) bool {
	return ' ' <= r && r <= '~'
}
