package extract

import (
	"fmt"
	"math"
)

// ProgressFunc receives progress updates from the pipeline. Percent is
// 0-100 and non-decreasing across a run; status is a human-readable line
// naming the segment position. Invoked synchronously.
type ProgressFunc func(percent int, status string)

// reportProgress emits the progress for the start of segment i of n.
func reportProgress(fn ProgressFunc, i, n int) {
	if fn == nil || n <= 0 {
		return
	}
	percent := int(math.Round(float64(i) / float64(n) * 100))
	fn(percent, fmt.Sprintf("processing segment %d of %d", i+1, n))
}

// reportDone emits the terminal 100% update.
func reportDone(fn ProgressFunc, n int) {
	if fn == nil {
		return
	}
	fn(100, fmt.Sprintf("processed %d segments", n))
}
