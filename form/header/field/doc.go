// Package field provides the low-level representation of a single form part
// header field. A field is a name and a value that were separated by a colon
// followed by a space on the original header line. Fields are immutable once
// created.
package field
