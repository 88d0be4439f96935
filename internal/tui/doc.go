// Package tui renders the single status indicator shown while a project is
// being scaffolded. On a terminal it is an animated bubbletea spinner; when
// output is redirected it degrades to plain status lines.
package tui
