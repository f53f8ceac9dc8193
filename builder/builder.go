// Package builder provides a chainable accumulator for assembling strings
// out of arbitrary values.
package builder

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Builder accumulates the textual form of appended values in a single
// growable buffer, so appending is amortized O(n) over the final length
// rather than one reallocation per value. The zero value is ready to use.
//
// Builder has no search logic and retains nothing but its own buffer.
type Builder struct {
	buf []byte
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Append adds the textual representation of v to the builder and returns
// the receiver for chaining.
//
// Strings and byte slices append verbatim, runes append as the character
// they name (UTF-8 encoded), single bytes append raw, and booleans,
// integers of every width, and floats render via strconv. Values
// implementing fmt.Stringer or error use their own rendering. Everything
// else falls back to fmt's %v form.
func (b *Builder) Append(v any) *Builder {
	switch t := v.(type) {
	case string:
		b.buf = append(b.buf, t...)
	case []byte:
		b.buf = append(b.buf, t...)
	case byte:
		b.buf = append(b.buf, t)
	case rune:
		b.buf = utf8.AppendRune(b.buf, t)
	case bool:
		b.buf = strconv.AppendBool(b.buf, t)
	case int:
		b.buf = strconv.AppendInt(b.buf, int64(t), 10)
	case int8:
		b.buf = strconv.AppendInt(b.buf, int64(t), 10)
	case int16:
		b.buf = strconv.AppendInt(b.buf, int64(t), 10)
	case int64:
		b.buf = strconv.AppendInt(b.buf, t, 10)
	case uint:
		b.buf = strconv.AppendUint(b.buf, uint64(t), 10)
	case uint16:
		b.buf = strconv.AppendUint(b.buf, uint64(t), 10)
	case uint32:
		b.buf = strconv.AppendUint(b.buf, uint64(t), 10)
	case uint64:
		b.buf = strconv.AppendUint(b.buf, t, 10)
	case float32:
		b.buf = strconv.AppendFloat(b.buf, float64(t), 'g', -1, 32)
	case float64:
		b.buf = strconv.AppendFloat(b.buf, t, 'g', -1, 64)
	case fmt.Stringer:
		b.buf = append(b.buf, t.String()...)
	case error:
		b.buf = append(b.buf, t.Error()...)
	default:
		b.buf = fmt.Append(b.buf, v)
	}
	return b
}

// String returns the concatenation of all appended values in call order.
func (b *Builder) String() string {
	return string(b.buf)
}

// Len returns the current length of the accumulated string in bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset empties the builder, keeping the buffer for reuse.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}
