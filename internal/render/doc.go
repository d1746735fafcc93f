// Package render turns search matches into output.
//
// The text format prints every match as "x,y", all
// joined by commas on a single line, in the order the matches were found.
// No matches means no output at all, not even a newline, so shell scripts
// can test for an empty result.
//
//	$ image-grep screen.bmp button.bmp
//	12,40,300,40
//
// The json format writes an array of {"x":..,"y":..} objects instead.
package render
