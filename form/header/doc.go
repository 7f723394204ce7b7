// Package header provides the ordered header of a form part. Fields are kept in
// the order they appeared and duplicates are kept. Lookups by name are
// case-insensitive, but the stored names are left exactly as they were parsed.
//
// The Parse() function turns a header block into a Header using field.Parse()
// for each line.
package header
