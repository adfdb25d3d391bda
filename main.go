package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/collections/demo"
)

// Each demo builds one collection, runs a fixed script of operations and
// prints the state after every step.
//
// Run:
//
//	go run .                      # all four demos
//	go run . -demo priorityqueue  # just one
//	go run . -v                   # progress on stderr
func main() {
	only := flag.String("demo", "", "run a single demo: linkedlist, priorityqueue, queue or stack")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags|log.Lmicroseconds)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	runner := demo.NewRunner(demo.Config{
		Out:    os.Stdout,
		Logger: logger,
		Only:   *only,
	})
	if err := runner.Run(); err != nil {
		// Errors are reported even without -v.
		log.New(os.Stderr, "", log.LstdFlags).Printf("[main] %v", err)
		os.Exit(1)
	}
}
