//go:build !hwy_debug

package hwy

const debugChecks = false
