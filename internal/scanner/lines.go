package scanner

import "bytes"

// CRLF is the only line break recognized by this module.
var CRLF = []byte("\x0d\x0a") // \r\n

// Lines walks a buffer one CRLF-terminated line at a time, keeping track of
// the offset of each line within the buffer. Unlike bufio.Scanner, it never
// copies and never limits the length of a line, which matters because a line
// inside a binary part body may be arbitrarily long.
//
// A line starts at offset 0 or immediately after a CRLF. A buffer that ends in
// CRLF therefore ends with an empty, unterminated line at len(buf).
type Lines struct {
	buf        []byte
	next       int
	start, end int
	terminated bool
}

// NewLines returns a Lines positioned before the first line of buf.
func NewLines(buf []byte) *Lines {
	return &Lines{buf: buf}
}

// Scan advances to the next line. It returns false once every line has been
// visited.
func (l *Lines) Scan() bool {
	if l.next > len(l.buf) {
		return false
	}

	l.start = l.next
	if ix := bytes.Index(l.buf[l.start:], CRLF); ix >= 0 {
		l.end = l.start + ix
		l.terminated = true
		l.next = l.end + len(CRLF)
	} else {
		l.end = len(l.buf)
		l.terminated = false
		l.next = len(l.buf) + 1
	}

	return true
}

// Bytes returns the current line without its line break. The slice shares
// storage with the buffer.
func (l *Lines) Bytes() []byte {
	return l.buf[l.start:l.end]
}

// Start returns the offset of the first byte of the current line.
func (l *Lines) Start() int {
	return l.start
}

// End returns the offset just past the current line, not counting its line
// break.
func (l *Lines) End() int {
	return l.end
}

// Next returns the offset at which the following line begins. For the final,
// unterminated line this is len(buf).
func (l *Lines) Next() int {
	if l.next > len(l.buf) {
		return len(l.buf)
	}
	return l.next
}

// Terminated returns true if the current line ended with a CRLF. Only the final
// line of a buffer may be unterminated.
func (l *Lines) Terminated() bool {
	return l.terminated
}
