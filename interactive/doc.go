// Package interactive holds the terminal UI side of abom: a small
// journal viewer for browsing recorded build events. Everything else in
// the product is deliberately non-interactive, since a compiler wrapper
// mostly runs under build systems with no terminal attached.
package interactive
