package demo_test

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/collections/demo"
)

const linkedListTranscript = `
  initial list: [A B C D F]
  first element (peek): A

  pop front: A
  list after pop: [B C D F]

  insert "E" at 4: [B C D F E]
  remove "E" (found=true): [B C D F]

  index of "C": 1

  -- as a stack --
  after push X, Y: [Y X B C D F]
  popped: Y
  list after pop 1: [X B C D F]
  popped: X
  list after pop 2: [B C D F]

  final list: [B C D F]
`

const priorityQueueTranscript = `
  initial queue: [10 20 40 50 30]
  head of queue (peek): 10

  extracting in priority order:
    extracted 10 | remaining [20 30 40 50]
    extracted 20 | remaining [30 50 40]
    extracted 30 | remaining [40 50]
    extracted 40 | remaining [50]
    extracted 50 | remaining []

  reverse alphabetical: [D C B A]
  peek: D

  extracting by custom priority:
    extracted D | remaining [C A B]
    extracted C | remaining [B A]
    extracted B | remaining [A]
    extracted A | remaining []

  all elements processed, queue is empty: true
`

const queueTranscript = `
  initial queue: [Ethan Maggie Crew Pierce]
  peek (front): Ethan

  dequeuing two elements:
    removed: Ethan
    removed: Maggie

  queue after two dequeues: [Crew Pierce]
  next at front (peek): Crew

  contains "Crew"? true
  contains "Ethan"? false

  current size: 2
  dequeuing: Crew
  dequeuing: Pierce

  queue is empty: true
`

const stackTranscript = `
  initial stack: [Minecraft Overwatch Battlefield Borderlands]
  top of stack (peek): Borderlands

  position of "Minecraft" from top: 4

  popping...
  removed: Borderlands
  stack after one pop: [Minecraft Overwatch Battlefield]
  peek after pop: Battlefield
  is the stack empty? false

  emptying stack...
    popped Battlefield | remaining [Minecraft Overwatch]
    popped Overwatch | remaining [Minecraft]
    popped Minecraft | remaining []

  stack is empty: true
`

// ── Transcripts ──────────────────────────────────────────────────────────────

func TestTranscripts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(io.Writer) error
		want string
	}{
		{"linkedlist", demo.LinkedList, linkedListTranscript},
		{"priorityqueue", demo.PriorityQueue, priorityQueueTranscript},
		{"queue", demo.Queue, queueTranscript},
		{"stack", demo.Stack, stackTranscript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.run(&buf))
			assert.Equal(t, strings.TrimPrefix(tt.want, "\n"), buf.String())
		})
	}
}

// ── Runner ───────────────────────────────────────────────────────────────────

func TestRunnerRunsAllInOrder(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, demo.NewRunner(demo.Config{Out: &out}).Run())

	text := out.String()
	last := -1
	for _, d := range demo.All {
		banner := "━━━ " + d.Title + " ━━━"
		i := strings.Index(text, banner)
		require.GreaterOrEqual(t, i, 0, "missing banner for %s", d.Name)
		assert.Greater(t, i, last, "%s out of order", d.Name)
		last = i
	}
	assert.Contains(t, text, strings.TrimPrefix(stackTranscript, "\n"))
}

func TestRunnerOnly(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	r := demo.NewRunner(demo.Config{
		Out:    &out,
		Logger: log.New(&logs, "", 0),
		Only:   "queue",
	})
	require.NoError(t, r.Run())

	assert.Equal(t, "\n━━━ Queue — FIFO ━━━\n"+strings.TrimPrefix(queueTranscript, "\n"), out.String())
	assert.Equal(t, "[demo] running queue\n[demo] queue finished\n", logs.String())
}

func TestRunnerUnknownDemo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := demo.NewRunner(demo.Config{Out: &out, Only: "heap"}).Run()
	require.ErrorIs(t, err, demo.ErrUnknownDemo)
	assert.EqualError(t, err, `unknown demo "heap"`)
	assert.Zero(t, out.Len(), "nothing runs when the selection is invalid")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, d := range demo.All {
		got, err := demo.Lookup(d.Name)
		require.NoError(t, err)
		assert.Equal(t, d.Title, got.Title)
	}
}
