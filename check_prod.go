//go:build vlistprod

package vlist

const checkEnabled = false
