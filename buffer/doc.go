// Package buffer implements the editor's row-oriented text model: raw
// line content, its tab-expanded render form, and the conversions
// between buffer coordinates and render coordinates.
package buffer
