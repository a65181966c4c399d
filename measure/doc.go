// Package measure provides text measurers for boxtree text leaves.
//
// [Face] measures with golang.org/x/image/font faces in pixels, for the
// raster renderer. [Cells] measures in terminal cells, for the cell
// renderer, where every line is one row and width follows Unicode East
// Asian width rules.
package measure
