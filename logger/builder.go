package logger

import "github.com/flexlog/flexlog/core"

// Builder resolves a partial configuration over DefaultConfig and
// provides a fluent API for building Logger instances. Each With method
// replaces exactly one field; fields never touched keep their defaults.
// Replacement is shallow — WithLevels swaps the whole level set, it
// does not append to the default one.
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder seeded with DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithLevels replaces the ordered level set.
func (b *Builder) WithLevels(levels ...string) *Builder {
	b.cfg.Levels = levels
	return b
}

// WithActiveLevel sets the minimum active level. Passing an identifier
// that is not in the level set — the empty string, say — disables every
// level.
func (b *Builder) WithActiveLevel(level string) *Builder {
	b.cfg.ActiveLevel = level
	return b
}

// WithNamer sets the function that derives public names from level
// identifiers.
func (b *Builder) WithNamer(namer core.NamerFunc) *Builder {
	b.cfg.Namer = namer
	return b
}

// WithEnrich sets the enrich strategy.
func (b *Builder) WithEnrich(enrich core.EnrichFunc) *Builder {
	b.cfg.Enrich = enrich
	return b
}

// WithFormat sets the format strategy.
func (b *Builder) WithFormat(format core.FormatFunc) *Builder {
	b.cfg.Format = format
	return b
}

// WithWrite sets the write strategy.
func (b *Builder) WithWrite(write core.WriteFunc) *Builder {
	b.cfg.Write = write
	return b
}

// WithNoOp sets the result producer for inactive log functions.
func (b *Builder) WithNoOp(noOp core.NoOpFunc) *Builder {
	b.cfg.NoOp = noOp
	return b
}

// Config returns the resolved configuration as it stands.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build creates the Logger instance from the resolved configuration.
func (b *Builder) Build() *Logger {
	return Build(b.cfg)
}
