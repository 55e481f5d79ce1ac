package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"simple-calculator/internal/logger"
)

const defaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() {
	f()
}

type component struct {
	name string
	impl Shutdownable
}

type Manager struct {
	app         string
	components  []component
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewManager creates a manager whose log lines are tagged with app.
func NewManager(app string, log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		app:         app,
		logger:      log,
		stepTimeout: defaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Register adds a component. Components shut down in reverse registration order.
func (m *Manager) Register(name string, impl Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, impl: impl})
}

// Listen runs Shutdown on the first SIGINT or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"app":    m.app,
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
		signal.Stop(sigChan)
	}()
}

// Shutdown runs every registered component once; later calls return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"app":        m.app,
		"components": len(m.components),
	})

	m.cancel()

	started := time.Now()
	timedOut := 0
	for i := len(m.components) - 1; i >= 0; i-- {
		if !m.stop(m.components[i]) {
			timedOut++
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", map[string]interface{}{
		"app":         m.app,
		"timed_out":   timedOut,
		"duration_ms": time.Since(started).Milliseconds(),
	})
}

// stop runs one component, reporting false when it outlived the step timeout.
func (m *Manager) stop(c component) bool {
	started := time.Now()
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		c.impl.Shutdown()
	}()

	select {
	case <-finished:
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
			"app":         m.app,
			"component":   c.name,
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return true
	case <-time.After(m.stepTimeout):
		m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
			"app":       m.app,
			"component": c.name,
			"timeout":   m.stepTimeout.String(),
		})
		return false
	}
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
