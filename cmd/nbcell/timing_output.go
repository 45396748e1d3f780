package main

import (
	"fmt"
	"io"

	"nbcell/internal/observ"
)

// printTimings печатает сводку фаз по всем ячейкам запуска.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || len(timer.Phases()) == 0 {
		return
	}
	if _, err := fmt.Fprint(out, timer.Summary()); err != nil {
		panic(err)
	}
}
