// internal/logger/registry.go

package logger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gobwas/glob"

	"github.com/orgoj/daylog/internal/config"
	"github.com/orgoj/daylog/internal/logrecord"
)

// Registry owns the process's logger facades, one per name. It is
// created once at the composition root and handed to everything that
// needs a logger; there is no ambient global registry.
type Registry struct {
	mu      sync.RWMutex
	root    string
	rules   []compiledRule
	loggers map[string]*Logger
	app     *AppLogger
}

type compiledRule struct {
	pattern glob.Glob
	spec    config.LoggerRule
}

// NewRegistry creates a registry for the configured logs root and logger
// rules. Rule patterns must already have passed config validation.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	rules := make([]compiledRule, 0, len(cfg.Loggers))
	for i, spec := range cfg.Loggers {
		pattern, err := glob.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("loggers[%d]: invalid pattern '%s': %w", i, spec.Pattern, err)
		}
		rules = append(rules, compiledRule{pattern: pattern, spec: spec})
	}

	return &Registry{
		root:    cfg.LogsRoot,
		rules:   rules,
		loggers: make(map[string]*Logger),
		app:     GetAppLogger(),
	}, nil
}

// Get returns the facade for name, building its writers on first use.
// Calling Get again with the same name returns the identical instance
// and never attaches a second set of writers.
func (r *Registry) Get(name string) *Logger {
	r.mu.RLock()
	lgr, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return lgr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if lgr, ok := r.loggers[name]; ok {
		return lgr
	}

	lgr = r.build(name)
	r.loggers[name] = lgr
	return lgr
}

// build assembles the writer set for a new logger name from the first
// matching rule, or from the built-in defaults.
func (r *Registry) build(name string) *Logger {
	level := logrecord.INFO
	text, json, console := true, true, false

	for _, rule := range r.rules {
		if rule.pattern.Match(name) {
			level = rule.spec.MinLevel()
			text = rule.spec.Text
			json = rule.spec.JSON
			console = rule.spec.Console
			break
		}
	}

	var writers []Writer
	if text {
		w, err := NewTextWriter(r.root, name)
		if err != nil {
			r.app.Error("Failed to create text writer for logger '%s': %v", name, err)
		} else {
			writers = append(writers, w)
		}
	}
	if json {
		w, err := NewJSONWriter(r.root, name)
		if err != nil {
			r.app.Error("Failed to create json writer for logger '%s': %v", name, err)
		} else {
			writers = append(writers, w)
		}
	}
	if console {
		writers = append(writers, NewConsoleWriter(name))
	}

	return NewLogger(name, level, writers...)
}

// Names returns the names of all facades created so far, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CloseAll closes the writers of every facade. Used at shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var wg sync.WaitGroup
	for name, lgr := range r.loggers {
		for _, w := range lgr.writers {
			wg.Add(1)
			go func(name string, w Writer) {
				defer wg.Done()
				if err := w.Close(); err != nil {
					r.app.Warn("Error closing writer for logger '%s': %v", name, err)
				}
			}(name, w)
		}
	}
	wg.Wait()
	r.loggers = make(map[string]*Logger) // Clear the map after closing
}
