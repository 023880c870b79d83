package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// argParams renders "arg0 T0, arg1 T1".
func argParams(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = "arg" + strconv.Itoa(i) + " T" + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}

// argFields renders "a.Arg0, a.Arg1".
func argFields(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = "a.Arg" + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}

// argInit renders "Arg0: arg0, Arg1: arg1".
func argInit(count int) string {
	parts := make([]string, count)
	for i := range parts {
		n := strconv.Itoa(i)
		parts[i] = "Arg" + n + ": arg" + n
	}
	return strings.Join(parts, ", ")
}
