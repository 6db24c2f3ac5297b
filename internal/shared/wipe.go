// Package shared provides small helpers used across ddnsup components.
package shared

// WipeByteArray overwrites the contents of b with zeros. Used to remove
// password material from memory once the wire frame has been built.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
