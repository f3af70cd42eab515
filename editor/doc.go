// Package editor wires the text buffer to the terminal: the session
// that owns all editor state, the viewport and its scroll clamping, the
// frame renderer, the incremental search prompt, and key dispatch.
package editor
