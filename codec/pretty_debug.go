//go:build debug

package codec

const prettyByDefault = true
