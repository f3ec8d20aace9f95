//go:build debug

package engine

const assertions = true
