// Package sentinel watches the agent layout of a project and repairs it
// with the doctor whenever a critical file goes missing.
package sentinel

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/doctor"
)

// DefaultDebounce batches bursts of events from editors and git.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Sentinel.
type Options struct {
	AgentDir string
	Debounce time.Duration
	Logger   *zap.Logger

	// CriticalFiles are project-relative paths whose directories are
	// watched too. Missing ones are reported after every heal.
	CriticalFiles []string

	// Heal runs after a quiet period following changes. Defaults to a
	// doctor run with Fix set.
	Heal func(projectDir string) (*doctor.Report, error)
}

// Stats counts sentinel activity.
type Stats struct {
	Events int
	Heals  int
	Fixed  int
	Errors int
	// Missing lists critical files absent after the last heal.
	Missing []string
}

// Sentinel is a long-running watcher over one project.
type Sentinel struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	root     string
	agent    string
	critical []string
	debounce time.Duration
	log      *zap.Logger
	heal     func(string) (*doctor.Report, error)
	pending  time.Time
	stats    Stats
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New prepares a Sentinel for projectDir. Nothing is watched until Start.
func New(projectDir string, opts Options) (*Sentinel, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	s := &Sentinel{
		watcher:  w,
		root:     projectDir,
		agent:    opts.AgentDir,
		critical: opts.CriticalFiles,
		debounce: opts.Debounce,
		log:      opts.Logger,
		heal:     opts.Heal,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	if s.agent == "" {
		s.agent = ".agent"
	}
	if s.debounce <= 0 {
		s.debounce = DefaultDebounce
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.heal == nil {
		agent, log := s.agent, s.log
		s.heal = func(dir string) (*doctor.Report, error) {
			return doctor.Run(dir, doctor.Options{AgentDir: agent, Fix: true, Logger: log})
		}
	}
	return s, nil
}

// Dirs returns the directories the sentinel watches.
func (s *Sentinel) Dirs() []string {
	base := filepath.Join(s.root, s.agent)
	dirs := []string{s.root, base}
	for _, d := range doctor.RequiredDirs {
		dirs = append(dirs, filepath.Join(base, d))
	}
	seen := map[string]bool{}
	for _, d := range dirs {
		seen[d] = true
	}
	for _, f := range s.critical {
		d := filepath.Dir(filepath.Join(s.root, filepath.FromSlash(f)))
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Start runs an initial heal, then watches in the background.
func (s *Sentinel) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.runHeal()
	s.addWatches()
	go s.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (s *Sentinel) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh
	if err := s.watcher.Close(); err != nil {
		s.log.Warn("sentinel: closing watcher", zap.Error(err))
	}
	s.log.Info("sentinel stopped", zap.String("project", s.root))
}

// Stats returns a snapshot of the counters.
func (s *Sentinel) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Sentinel) addWatches() {
	for _, d := range s.Dirs() {
		// Adding a watched path again is a no-op.
		if err := s.watcher.Add(d); err != nil {
			s.log.Debug("sentinel: cannot watch", zap.String("dir", d), zap.Error(err))
		}
	}
}

func (s *Sentinel) run(ctx context.Context) {
	defer close(s.doneCh)

	tick := time.NewTicker(s.debounce / 5)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			s.mu.Lock()
			s.stats.Events++
			s.pending = time.Now()
			s.mu.Unlock()
			s.log.Debug("sentinel event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.mu.Lock()
			s.stats.Errors++
			s.mu.Unlock()
			s.log.Warn("sentinel watcher error", zap.Error(err))
		case <-tick.C:
			s.mu.Lock()
			due := !s.pending.IsZero() && time.Since(s.pending) >= s.debounce
			if due {
				s.pending = time.Time{}
			}
			s.mu.Unlock()
			if due {
				s.runHeal()
				s.addWatches()
			}
		}
	}
}

func (s *Sentinel) missingCritical() []string {
	var out []string
	for _, f := range s.critical {
		if _, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(f))); err != nil {
			out = append(out, f)
		}
	}
	return out
}

func (s *Sentinel) runHeal() {
	rep, err := s.heal(s.root)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Heals++
	s.stats.Missing = s.missingCritical()
	for _, f := range s.stats.Missing {
		s.log.Warn("sentinel: critical file missing", zap.String("file", f))
	}
	if err != nil {
		s.stats.Errors++
		s.log.Warn("sentinel heal failed", zap.Error(err))
		return
	}
	n := rep.Count(doctor.Fixed)
	s.stats.Fixed += n
	if n > 0 {
		s.log.Info("sentinel restored files", zap.Int("fixed", n), zap.String("project", s.root))
	}
}
