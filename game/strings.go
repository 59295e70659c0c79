package game

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/internal"
)

// KeyValsString formats an ordered map into a single bracketed string.
// Example: {foo: 1, bar: true} => "[foo=1 bar=true]".
func KeyValsString(m *orderedmap.OrderedMap[string, any]) string {
	if m == nil || m.Len() == 0 {
		return "[]"
	}
	sb := internal.GetBuffer()
	defer internal.PutBuffer(sb)

	sb.WriteByte('[')
	first := true
	for el := m.Front(); el != nil; el = el.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(sb, "%s=%v", el.Key, el.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
