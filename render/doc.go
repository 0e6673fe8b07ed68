// Package render draws comparison sessions as PNG images and as plain text.
//
// PNG tiles one panel per slot, Columns panels per row, on a gray
// background. Each panel shows the grid (white empty cells, near-black
// walls, warm tints for weights), explored cells in light gray, the solution
// in cyan, the start in green and the target in red, with two label lines
// underneath: the algorithm name and "Cost/Length/Steps: c/l/s".
//
// Text prints the same information for one slot using the layout glyphs
// plus 'o' for explored and '*' for solution cells.
package render
