package transfer

import (
	"encoding/base64"
	"io"
	"mime/quotedprintable"

	"github.com/zostay/go-formdata/form/header"
)

const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be decoded from quoted-printable
	Base64          = "base64"           // bytes will be decoded from base64
)

// Decoder wraps an io.Reader of encoded bytes with one yielding decoded bytes.
type Decoder func(io.Reader) io.Reader

// NewAsIsDecoder returns an io.Reader that reads bytes as-is.
func NewAsIsDecoder(r io.Reader) io.Reader {
	return r
}

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data to the returned io.Reader. Line breaks in
// the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}

// NewQuotedPrintableDecoder will read bytes from the given io.Reader and return
// them in the returned io.Reader after decoding them from quoted-printable
// format.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(r)
}

// Decoders defines the supported Content-Transfer-Encodings and how to decode
// them. It can be modified to change the global handling of transfer
// encodings.
var Decoders = map[string]Decoder{
	None:            NewAsIsDecoder,
	Bit7:            NewAsIsDecoder,
	Bit8:            NewAsIsDecoder,
	Binary:          NewAsIsDecoder,
	QuotedPrintable: NewQuotedPrintableDecoder,
	Base64:          NewBase64Decoder,
}

// ApplyTransferDecoding returns an io.Reader that will decode incoming bytes
// according to the transfer encoding detected from the given header. The bytes
// are left as is if there's no transfer encoding or the transfer encoding is
// unknown or one that is interpreted as-is.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	cte, err := h.GetTransferEncoding()
	if err != nil {
		return r
	}

	if dec, ok := Decoders[cte]; ok {
		return dec(r)
	}

	return r
}
