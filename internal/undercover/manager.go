package undercover

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bloops-games/undercover/internal/database/matchstate/database"
	"github.com/bloops-games/undercover/internal/database/matchstate/model"
	rosterModel "github.com/bloops-games/undercover/internal/database/roster/model"
	"github.com/bloops-games/undercover/internal/logging"
	"github.com/bloops-games/undercover/internal/undercover/match"
	"github.com/bloops-games/undercover/internal/undercover/resource"
	"github.com/bloops-games/undercover/internal/util"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit")

type Catalog interface {
	match.Catalog
	Lookup(name string) (string, bool)
}

type StateStore interface {
	Add(m model.State) error
	Latest() (model.State, error)
	Clean() error
}

type RosterStore interface {
	Fetch(name string) (rosterModel.Roster, error)
	Store(r rosterModel.Roster) error
	List() ([]rosterModel.Roster, error)
	Delete(name string) error
}

// NewManager wires the engine to a console. states and rosters may be nil,
// persistence is skipped then.
func NewManager(config *Config, catalog Catalog, states StateStore, rosters RosterStore, opts ...match.Option) *Manager {
	return &Manager{
		config:  config,
		catalog: catalog,
		states:  states,
		rosters: rosters,
		opts:    opts,
	}
}

type Manager struct {
	mtx sync.RWMutex

	config  *Config
	catalog Catalog
	states  StateStore
	rosters RosterStore
	opts    []match.Option

	engine *match.Engine
	out    io.Writer

	// set once the current revealer asked to see the word
	revealed bool
	timer    *time.Timer
	deadline time.Time
}

// Snapshot is safe to call while Run is in progress.
func (m *Manager) Snapshot() match.Session {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	if m.engine == nil {
		return match.NewSession()
	}
	return m.engine.Snapshot()
}

// Run reads commands from in until it is exhausted, the quit command is
// typed or ctx is canceled. The unfinished game is saved on the way out.
func (m *Manager) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := logging.FromContext(ctx).Named("undercover.manager")
	ctx = logging.WithLogger(ctx, logger)

	m.out = out
	if err := m.init(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	m.print(resource.TextGreeting)
	m.render()

	lines := make(chan string)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.read(ctx, in, lines)
	})
	g.Go(func() error {
		return m.dispatch(ctx, lines)
	})

	err := g.Wait()
	m.stopTimer()

	if saveErr := m.save(ctx); saveErr != nil {
		logger.Errorf("save state: %v", saveErr)
	}

	if err != nil && !errors.Is(err, errQuit) {
		return err
	}

	m.print(resource.TextBye + "\n")
	return nil
}

func (m *Manager) init(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	opts := append([]match.Option{match.WithLogger(logger.Named("match.engine"))}, m.opts...)

	var engine *match.Engine
	if m.config.Restore && m.states != nil {
		state, err := m.states.Latest()
		switch {
		case err == nil && state.Resumable():
			engine = match.NewEngine(m.catalog, append(opts, match.WithSession(state.Session))...)
			logger.Infof("restored session %d saved at %s", state.Code, state.SavedAt)
			m.print(resource.TextRestored + "\n")
		case err != nil && !errors.Is(err, database.ErrEntryNotFound):
			return fmt.Errorf("latest state: %w", err)
		}

		if err == nil {
			if err := m.states.Clean(); err != nil && !errors.Is(err, database.ErrBucketNotFound) {
				return fmt.Errorf("clean states: %w", err)
			}
		}
	}

	if engine == nil {
		s := match.NewSession()
		s.Code = util.GenerateCode()
		s.CreatedAt = time.Now()
		engine = match.NewEngine(m.catalog, append(opts, match.WithSession(s))...)
	}

	m.mtx.Lock()
	m.engine = engine
	m.mtx.Unlock()

	if engine.Snapshot().Phase == match.PhaseDiscuss {
		m.armTimer()
	}

	return nil
}

func (m *Manager) read(ctx context.Context, in io.Reader, lines chan<- string) error {
	scanned := make(chan string)
	done := make(chan error, 1)

	// Scan can not be interrupted, the goroutine ends with the input.
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case scanned <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			close(lines)
			return nil
		case line := <-scanned:
			select {
			case lines <- line:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (m *Manager) dispatch(ctx context.Context, lines <-chan string) error {
	logger := logging.FromContext(ctx)

	for {
		var timerC <-chan time.Time
		if m.timer != nil {
			timerC = m.timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := m.handle(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				logger.Errorf("handle %q: %v", line, err)
			}
		case <-timerC:
			m.timer = nil
			m.print(resource.TextTimeUp + "\n")
			m.apply(func(e *match.Engine) bool {
				return e.StartDiscussion()
			})
		}
	}
}

// apply runs one intent and keeps the timer and the reveal prompt in step
// with the phase it lands in.
func (m *Manager) apply(intent func(e *match.Engine) bool) bool {
	m.mtx.Lock()
	before := m.engine.Snapshot()
	applied := intent(m.engine)
	after := m.engine.Snapshot()
	m.mtx.Unlock()

	if !applied {
		m.print(resource.TextIgnored + "\n")
		return false
	}

	if after.Phase != match.PhaseReveal || after.RevealIndex != before.RevealIndex {
		m.revealed = false
	}

	switch {
	case after.Phase == match.PhaseDiscuss && before.Phase != match.PhaseDiscuss:
		m.armTimer()
	case after.Phase != match.PhaseDiscuss:
		m.stopTimer()
	}

	m.render()
	return true
}

func (m *Manager) armTimer() {
	m.stopTimer()
	if m.config.DiscussionTime <= 0 {
		return
	}
	m.deadline = time.Now().Add(m.config.DiscussionTime)
	m.timer = time.NewTimer(m.config.DiscussionTime)
}

func (m *Manager) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) save(ctx context.Context) error {
	if m.states == nil || m.engine == nil {
		return nil
	}

	state := model.NewState(m.Snapshot())
	if !state.Resumable() {
		return nil
	}

	if err := m.states.Add(state); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	logging.FromContext(ctx).Infof("saved session %d", state.Code)
	return nil
}

func (m *Manager) print(s string) {
	_, _ = io.WriteString(m.out, s)
}
