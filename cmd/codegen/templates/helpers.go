package templates

import (
	"strconv"
	"strings"
)

// typeParams renders "T0, T1, ..." for n type parameters.
func typeParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(i))
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// params renders "s0 Signal[T0], v0 T0, ..." for n signal/value pairs.
func params(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("s" + idx + " Signal[T" + idx + "], v" + idx + " T" + idx)
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
