// Package form is the heart of this library. It parses a fully buffered
// multipart/form-data body into a FormData holding each Part with its ordered
// header and its exact body bytes, and it builds such bodies with a Buffer.
//
// Parsing needs the body and the boundary from the Content-Type header:
//
//	boundary, err := form.BoundaryFromContentType(req.Header.Get("Content-Type"))
//	if err != nil {
//	  return err
//	}
//
//	body, err := io.ReadAll(req.Body)
//	if err != nil {
//	  return err
//	}
//
//	fd, err := form.Parse(body, boundary)
//	if err != nil {
//	  return err
//	}
//
//	for _, p := range fd.Parts() {
//	  fmt.Println(p.Name(), p.Filename(), p.Size())
//	}
//
// Delimiter lines are only recognized at the start of a line, so binary
// content that happens to hold the boundary somewhere inside a line is never
// mistaken for a delimiter. Any error aborts the whole parse with a
// *ParseError that names the byte offset and, when there is one, the index of
// the part involved.
package form
