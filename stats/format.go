package stats

import (
	"fmt"
	"strings"
	"time"

	"juicer/vec"
)

// Paste joins the printed elements of x with sep.
func Paste(x any, sep string) string {
	v := vec.Vectorize(x)
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, sep)
}

// DateStamp formats t as YYYY-MM-DD.
func DateStamp(t time.Time) string {
	return t.Format(time.DateOnly)
}
