// Package serviceorder contains the ServiceOrder aggregate and its lifecycle
// state machine. The status engine is the single authority on which
// transitions are legal and which timestamps each transition stamps.
package serviceorder
