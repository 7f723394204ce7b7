// Package formdata decodes and encodes multipart/form-data bodies as
// described by RFC 7578 and RFC 2046.
//
// The form package does the work. form.Parse takes a complete body and its
// boundary and returns a form.FormData, an ordered list of parts. Each
// form.Part keeps its header fields in the order they were sent, duplicates
// included, and its body as the exact bytes found between the header and the
// next delimiter line. Bodies are never decoded; form.Part.DecodedReader is
// there for the rare part that still carries a Content-Transfer-Encoding.
//
// Going the other way, form.Buffer assembles parts into a body that
// form.Parse reads back byte for byte.
//
// Header handling lives under form/header. The header.Header type is the
// ordered list of field.Field values with case-insensitive lookup, and the
// param package breaks Content-Disposition and Content-Type values into their
// parameters.
//
// Getting the body and the boundary out of whatever transport delivered them
// is left to the caller, as is turning the result into any other structure.
// form.BoundaryFromContentType is provided for the common case of an HTTP
// Content-Type header.
package formdata
