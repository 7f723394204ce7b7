// Package scanner holds the line cursor shared by the boundary scanner and the
// header parser. Both need byte offsets for error reporting and both must treat
// a lone LF as ordinary data, so neither bufio.Scanner nor textproto fit.
package scanner
