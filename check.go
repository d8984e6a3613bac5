//go:build !vlistprod

package vlist

// Configuration validation is compiled in by default and compiled out of
// production builds via the "vlistprod" tag.
const checkEnabled = true
