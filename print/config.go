// Package print implements stage 3 (spec.md §4.5): walking the typed
// Operation/Scope trees stage 2 produced into source text. It is purely
// syntactic — every return type, priority and control-flow shape it needs
// was already decided by decompile/scope; this package only decides how to
// spell it.
//
// Grounded on original_source/primitive-to-string.cpp for the literal
// formatting rules (hex heuristic, float/double suffixes, NaN/Inf forms)
// and the Config option set spec.md §4.5 names. The teacher's own
// formatting code (cmd/wasm-dump/main.go) is plain fmt.Sprintf with no
// templating library, which this package follows.
package print

// Config holds the recognized stringification options (spec.md §4.5).
// Zero value is not directly usable — construct with NewConfig, which
// applies the documented defaults.
type Config struct {
	useHexNumbersAlways bool
	canUseHexNumbers    bool
	longPostfix         string
	floatPostfix        string
	doublePostfix       string
	useTrailingZero     bool
	useDoublePostfix    bool
	failOnError         bool
}

// Option configures a Config via functional options (the teacher has no
// config/options framework of its own to follow here, but this is the
// same functional-options shape urfave/cli's own App construction uses
// internally, and it keeps Config's fields unexported without needing a
// builder type).
type Option func(*Config)

// UseHexNumbersAlways forces every integer constant to print in `0x...`
// form regardless of the power-of-two heuristic.
func UseHexNumbersAlways(v bool) Option { return func(c *Config) { c.useHexNumbersAlways = v } }

// CanUseHexNumbers allows (but doesn't force) the power-of-two heuristic
// described in spec.md §4.5 to pick hex over decimal.
func CanUseHexNumbers(v bool) Option { return func(c *Config) { c.canUseHexNumbers = v } }

// LongPostfix sets the suffix appended to every long literal (default "L").
func LongPostfix(s string) Option { return func(c *Config) { c.longPostfix = s } }

// FloatPostfix sets the suffix appended to every float literal (default "f").
func FloatPostfix(s string) Option { return func(c *Config) { c.floatPostfix = s } }

// DoublePostfix sets the suffix appended to a double literal when
// UseDoublePostfix is enabled (default "d").
func DoublePostfix(s string) Option { return func(c *Config) { c.doublePostfix = s } }

// UseTrailingZero controls whether an integral-valued float/double
// literal prints with an explicit ".0" (`1.0f`) or bare (`1f`).
func UseTrailingZero(v bool) Option { return func(c *Config) { c.useTrailingZero = v } }

// UseDoublePostfix controls whether double literals ever carry an
// explicit suffix at all; when false (the default, matching source
// code's usual convention that a bare decimal literal is already a
// double), integral-valued doubles still get ".0" but never "d".
func UseDoublePostfix(v bool) Option { return func(c *Config) { c.useDoublePostfix = v } }

// FailOnError controls whether the printer panics on an internal
// inconsistency (an operation whose shape the printer doesn't recognize)
// rather than falling back to a placeholder string, matching spec.md §7's
// "recoverable vs. fatal" distinction at the stringification boundary.
func FailOnError(v bool) Option { return func(c *Config) { c.failOnError = v } }

// NewConfig builds a Config with spec.md §4.5's defaults (decimal
// literals, power-of-two hex heuristic allowed but not forced, `L`/`f`
// suffixes, no trailing zero, no explicit double suffix), then applies
// opts in order.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		canUseHexNumbers: true,
		longPostfix:      "L",
		floatPostfix:     "f",
		doublePostfix:    "d",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
