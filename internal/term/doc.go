// Package term displays phase portraits in the terminal: a braille
// [Canvas] for the static preview and an interactive bubbletea viewer
// with pan and zoom.
package term
