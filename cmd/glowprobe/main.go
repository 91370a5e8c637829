// Command glowprobe prints the glow intensity the dashboard would compute on
// each tick, using simulated time so a long window prints instantly.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kymera/internal/clock"
	"kymera/internal/glow"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	window := flag.Duration("for", 2*time.Second, "simulated duration to sample")
	flag.Parse()

	if *window <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -for must be positive")
		os.Exit(2)
	}

	start := time.Unix(0, 0).UTC()
	clk := clock.NewFake(start)
	osc := glow.New(clk)
	osc.Start()

	fmt.Println("elapsed_ms,intensity")
	clk.Advance(*window, func(msg tea.Msg) {
		tick, ok := msg.(glow.TickMsg)
		if !ok {
			return
		}
		osc.Update(msg)
		fmt.Printf("%d,%.6f\n", tick.Time.Sub(start).Milliseconds(), osc.Intensity())
	})
	osc.Stop()

	fmt.Fprintf(os.Stderr, "%d updates over %s\n", osc.Updates(), *window)
}
