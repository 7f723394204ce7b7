// Package param provides a tool for dealing with parameterized headers. In a
// form part these are the Content-Disposition header, which carries the field
// name and any filename, and the Content-Type header, which carries the media
// type of the body.
package param
