// Package hiddesc compiles a textual HID report descriptor description
// into the binary short-item byte stream defined by USB HID 1.11
// (ch. 5.8, ch. 6.2.2). Item names, usage pages, usage IDs, and unit
// systems are written out by name and resolved case-insensitively
// against the static encoding dictionary; structural rules (collection
// and delimiter balance, usage-page coupling, ReportSize/ReportCount
// pairing) are enforced during the single compile pass.
//
// Example:
//
//	src := hiddesc.FromString(`
//	    UsagePage(GenericDesktop)
//	    Usage(Mouse)
//	`)
//	var buf [64]byte
//	w := hiddesc.NewBufferWriter(buf[:])
//	if err := hiddesc.Compile(src, w); err != nil {
//	    log.Fatal(err)
//	}
//	descriptor := w.Bytes()
package hiddesc

import (
	"log/slog"

	"github.com/hiddesc/hiddesc/internal/compiler"
	"github.com/hiddesc/hiddesc/internal/types"
)

// Option configures a compile.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) compilerConfig() compiler.Config {
	return compiler.Config{Logger: types.Logger{L: c.logger}}
}

// Compile runs the descriptor state machine over src, writing the
// compiled bytes to sink in strict descriptor order. On failure it
// returns a *Error carrying the message kind and source position;
// bytes already emitted for earlier items remain in the sink, so the
// sink observes a prefix of the full output.
func Compile(src Source, sink Sink, opts ...Option) error {
	res := compiler.Compile(src, sink, newConfig(opts).compilerConfig())
	if res.Kind == types.None {
		return nil
	}
	err := newError(src, res)
	return &err
}

// CompiledSize runs the same state machine against a counting sink and
// returns the compiled descriptor size in bytes. It returns 0 when the
// source does not compile; the error kind is lost here, use
// CompileError to recover it.
func CompiledSize(src Source, opts ...Option) int {
	var sink SizeWriter
	res := compiler.Compile(src, &sink, newConfig(opts).compilerConfig())
	if res.Kind != types.None {
		return 0
	}
	return sink.Position()
}

// CompileError runs the state machine against a discarding sink and
// returns the resulting Error by value. On success the Error's Kind is
// None. Compile, CompiledSize, and CompileError accept the same inputs
// and agree on success, failure, and byte count.
func CompileError(src Source, opts ...Option) Error {
	res := compiler.Compile(src, NullWriter{}, newConfig(opts).compilerConfig())
	return newError(src, res)
}

// Lint runs the state machine against a discarding sink while
// collecting advisory notices: observations (numeric usage pages,
// redundant Push/Pop pairs, delimiters by number) that never affect
// whether a source compiles or what bytes it compiles to. The returned
// Error mirrors CompileError.
func Lint(src Source, opts ...Option) ([]Notice, Error) {
	cfg := newConfig(opts).compilerConfig()
	var notices []Notice
	cfg.Notify = func(n types.Notice) { notices = append(notices, n) }
	res := compiler.Compile(src, NullWriter{}, cfg)
	return notices, newError(src, res)
}
