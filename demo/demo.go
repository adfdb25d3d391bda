// Package demo holds the scripted collection demonstrations. Each one builds
// a collection, runs a fixed sequence of operations and writes the state
// after every step.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrUnknownDemo is returned when Config.Only names no demonstration.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one scripted demonstration.
type Demo struct {
	Name  string // selector used by Config.Only and the -demo flag
	Title string // section banner
	Run   func(w io.Writer) error
}

// All lists the demonstrations in the order they run.
var All = []Demo{
	{Name: "linkedlist", Title: "LinkedList — deque, queue and stack in one", Run: LinkedList},
	{Name: "priorityqueue", Title: "PriorityQueue — natural order and custom comparator", Run: PriorityQueue},
	{Name: "queue", Title: "Queue — FIFO", Run: Queue},
	{Name: "stack", Title: "Stack — LIFO and search", Run: Stack},
}

// Lookup finds a demonstration by name.
func Lookup(name string) (Demo, error) {
	for _, d := range All {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w %q", ErrUnknownDemo, name)
}

// Config holds Runner construction parameters.
type Config struct {
	// Out receives the demonstration output. Defaults to os.Stdout.
	Out io.Writer

	// Logger reports progress. If nil, progress is discarded.
	Logger *log.Logger

	// Only selects a single demonstration by name. Empty runs all of them.
	Only string
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}
	return out
}

// Runner executes demonstrations according to its Config.
type Runner struct {
	cfg Config
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg.withDefaults()}
}

// Run executes the selected demonstrations in order and stops at the first
// failure.
func (r *Runner) Run() error {
	demos := All
	if r.cfg.Only != "" {
		d, err := Lookup(r.cfg.Only)
		if err != nil {
			return err
		}
		demos = []Demo{d}
	}

	for _, d := range demos {
		r.cfg.Logger.Printf("[demo] running %s", d.Name)
		section(r.cfg.Out, d.Title)
		if err := d.Run(r.cfg.Out); err != nil {
			r.cfg.Logger.Printf("[demo] %s failed: %v", d.Name, err)
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
		r.cfg.Logger.Printf("[demo] %s finished", d.Name)
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
