// Package rle converts boards to and from the Life run-length encoded text
// format.
//
// A pattern is a header line followed by a body:
//
//	x = 5, y = 3
//	5o$bo$o!
//
// In the body 'o' is a live cell, 'b' a dead cell, '$' ends a row and '!'
// ends the pattern. A decimal count before a token repeats it. Dead cells at
// the end of a row are omitted, so rows may be shorter than x, but the body
// must still hold y rows.
//
// Encode wraps the body at 70 characters per line. Decode ignores line breaks
// in the body, skips '#' comment lines before the header and treats any
// character other than 'o' (spaces and digits with no cell after them
// included) as a dead cell. Input with too few rows or a row wider than x is
// rejected with an error that matches ErrInvalidFormat; rows beyond y are
// dropped.
package rle
