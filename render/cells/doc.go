// Package cells draws laid-out boxtree nodes into a terminal cell grid.
//
// A Buffer holds one grapheme cluster per column. Wide clusters such as CJK
// ideographs take two columns. Buffers print as plain text via String or
// with 24-bit color via ANSI.
package cells
