package logger

import "slices"

// Func is a log function bound to exactly one level of one Logger. It
// accepts the raw message — or a thunk deferring its construction — and
// returns whatever the configured write strategy returned (for inactive
// levels: the configured no-op result and a nil error).
type Func func(message any) (string, error)

// Thunk defers message construction. An active log function invokes the
// thunk to obtain the raw message; an inactive one never does, so the
// construction cost is only paid when the level actually logs. A bare
// func() any works the same way.
type Thunk func() any

// Logger is an immutable mapping from derived function names to log
// functions, plus an accessor for the configuration it was built from.
// All bindings are fixed at construction; a Logger is safe for
// concurrent use without locking.
type Logger struct {
	fns   map[string]Func
	names []string
	cfg   Config
}

// Build constructs a Logger from cfg. For every level in the set it
// decides, once, whether the level is active: levels ranked below the
// active level bind to a no-op function, the rest bind to the
// enrich → format → write pipeline closed over that level.
//
// An ActiveLevel not present in the level set ranks above every real
// level, so every function degrades to a no-op — that is the designed
// way to turn all logging off. When the namer derives the same name for
// two levels, the later level in set order silently wins.
func Build(cfg Config) *Logger {
	cfg.Levels = slices.Clone(cfg.Levels)

	rank := make(map[string]int, len(cfg.Levels))
	for i, level := range cfg.Levels {
		rank[level] = i // duplicate identifiers: last position wins
	}

	base, ok := rank[cfg.ActiveLevel]
	if !ok {
		base = len(cfg.Levels)
	}

	// One shared binding for every silenced level. It must not touch
	// its argument: deferred messages stay unevaluated.
	inactive := func(any) (string, error) {
		return cfg.NoOp(), nil
	}

	fns := make(map[string]Func, len(cfg.Levels))
	names := make([]string, 0, len(cfg.Levels))
	for _, level := range cfg.Levels {
		fn := Func(inactive)
		if rank[level] >= base {
			fn = operative(level, cfg)
		}
		name := cfg.Namer(level)
		if _, dup := fns[name]; !dup {
			names = append(names, name)
		}
		fns[name] = fn
	}

	return &Logger{fns: fns, names: names, cfg: cfg}
}

// operative returns the active pipeline for one level: resolve the
// deferred message if any, enrich, format, write — each exactly once
// per call, failures surfacing to the caller unwrapped.
func operative(level string, cfg Config) Func {
	return func(message any) (string, error) {
		enriched := cfg.Enrich(level, force(message))
		line, err := cfg.Format(enriched)
		if err != nil {
			return "", err
		}
		return cfg.Write(level, line)
	}
}

// force resolves a deferred message: thunks are invoked to produce the
// raw message, anything else already is the raw message.
func force(message any) any {
	switch fn := message.(type) {
	case Thunk:
		return fn()
	case func() any:
		return fn()
	}
	return message
}

// Func returns the log function bound under name, or nil when the
// Logger exposes no such name.
func (l *Logger) Func(name string) Func {
	return l.fns[name]
}

// Names returns the derived function names in level-set order (first
// occurrence for duplicates). The returned slice is the caller's to
// keep.
func (l *Logger) Names() []string {
	return slices.Clone(l.names)
}

// Config returns the effective configuration the Logger was built from.
// The level set is copied on the way out, so mutating the returned
// value never affects the Logger.
func (l *Logger) Config() Config {
	cfg := l.cfg
	cfg.Levels = slices.Clone(cfg.Levels)
	return cfg
}
