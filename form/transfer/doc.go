// Package transfer interprets the Content-Transfer-Encoding header that some
// older clients still attach to form parts. Only quoted-printable and base64
// change the bytes. Other settings such as binary, 7bit, or 8bit leave the
// bytes as-is.
//
// Parsing never applies these decoders. They are only used when a caller asks
// a part for its decoded content.
package transfer
