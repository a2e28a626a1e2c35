// Package logger is the public API of flexlog. Most users only need to
// import this package.
//
// A Logger is built from a Configuration that names the ordered level
// set, the minimum active level, and the four pipeline strategies
// (enrich, format, write, no-op) plus the function namer. The Builder
// resolves partial configuration over DefaultConfig:
//
//	log := logger.NewBuilder().
//	    WithActiveLevel(logger.LevelDebug).
//	    WithWrite(writer.Stderr()).
//	    Build()
//
//	log.Func("info")("server started")
//
// Whether a level is active is decided once, when the Logger is built:
// levels ranked below the active level are bound to a no-op function,
// everything else to the enrich → format → write pipeline. A Logger is
// immutable after construction — the level set, the bindings and the
// configuration never change — so it is safe for concurrent use without
// any locking.
//
// Expensive messages can be deferred with a thunk; inactive levels
// never invoke it:
//
//	log.Func("trace")(logger.Thunk(func() any { return dump() }))
//
// There is deliberately no package-level default Logger and no mutable
// package state. DefaultConfig returns a fresh value on every call;
// programs that want a shared instance build one and pass it around.
package logger
