package shutdown

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"simple-calculator/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsComponentsInReverseOrder(t *testing.T) {
	m := NewManager("calculator-test", logger.Nop())

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("controller", record("controller"))
	m.Register("window", record("window"))

	m.Shutdown()

	assert.Equal(t, []string{"window", "controller"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager("calculator-test", logger.Nop())
	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownDoesNotWaitForeverOnStuckComponent(t *testing.T) {
	m := NewManager("calculator-test", logger.Nop())
	m.stepTimeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	m.Register("stuck", Func(func() { <-block }))

	ran := false
	m.Register("after", Func(func() { ran = true }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestShutdownLogsComponentsAndTimeouts(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager("simple-calculator", logger.NewZerolog(&buf, zerolog.DebugLevel))
	m.stepTimeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	m.Register("metrics", Func(func() { <-block }))
	m.Register("controller", Func(func() {}))

	m.Shutdown()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], `"component":"controller"`)
	assert.Contains(t, lines[2], `"component":"metrics"`)
	assert.Contains(t, lines[2], "component shutdown timeout")
	assert.Contains(t, lines[3], `"timed_out":1`)
	assert.Contains(t, lines[3], `"app":"simple-calculator"`)
}
