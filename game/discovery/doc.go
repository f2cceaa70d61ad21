// Package discovery turns an INTERACT(kind, text) command into a possibly
// empty discovery outcome and a persistent environmental change on the
// current tile.
package discovery
