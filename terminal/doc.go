// Package terminal provides the editor's terminal layer: the raw input
// discipline with bounded reads, a finite-state decoder from raw bytes
// to logical keys, and the fixed VT100 control-sequence subset used by
// the renderer.
package terminal
