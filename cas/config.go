// Package cas is the public façade named in spec.md §6: construction,
// arithmetic combinators, inspection, transformation, trigonometric
// constructors, polynomial operations (over ℚ and GF(p)), calculus, and
// formatting, all built on top of bigint/expr/reduce/polyexpr/polyops/
// gf/factor/roots/calculus. The core is a library (spec.md §6 "CLI,
// environment variables... none"); package cmd/mathsh is a thin,
// separate REPL driver, not part of this façade.
package cas

import "context"

// Config holds the ambient settings of spec.md §4.0/§5: the output base
// used by ToString/ToLatex, the Precision passed to roots.Isolate's
// bisection cutoff, and an optional cooperative-cancellation Context.
// Modeled directly on ivy's config.Config: a plain struct with pointer-
// receiver, nil-safe accessors, and an explicit SetXxx per field rather
// than exported fields, so the zero value (via new(Config) or a nil
// *Config) is always a well-defined "use the defaults" configuration.
type Config struct {
	outputBase int
	precision  *precisionValue
	ctx        context.Context
}

// precisionValue boxes a rational precision so Config's zero value (no
// box allocated) can mean "use the package-level DefaultPrecision"
// without requiring callers to import expr just to build a Config.
type precisionValue struct {
	num, den int64
}

// DefaultOutputBase is the base ToString/ToLatex render integers in when
// a Config has never had SetOutputBase called (or is nil), matching
// ivy's own C-like default of base 10.
const DefaultOutputBase = 10

// DefaultPrecisionNum, DefaultPrecisionDen give the default root-isolation
// precision (1/10^6) used when a Config has never had SetPrecision called.
const (
	DefaultPrecisionNum = 1
	DefaultPrecisionDen = 1000000
)

// OutputBase reports the base used to render integers, defaulting to
// DefaultOutputBase on a nil or zero-valued Config.
func (c *Config) OutputBase() int {
	if c == nil || c.outputBase == 0 {
		return DefaultOutputBase
	}
	return c.outputBase
}

// SetOutputBase sets the output base (2 through 36, following
// math/big.Int.Text's own supported range).
func (c *Config) SetOutputBase(base int) {
	c.outputBase = base
}

// Precision returns the num/den pair roots.Isolate should bisect to,
// defaulting to DefaultPrecisionNum/DefaultPrecisionDen.
func (c *Config) Precision() (num, den int64) {
	if c == nil || c.precision == nil {
		return DefaultPrecisionNum, DefaultPrecisionDen
	}
	return c.precision.num, c.precision.den
}

// SetPrecision sets the root-isolation precision to num/den.
func (c *Config) SetPrecision(num, den int64) {
	c.precision = &precisionValue{num: num, den: den}
}

// Context returns the cooperative-cancellation context threaded into
// factor/roots long-running loops (spec.md §5), or nil ("never cancel")
// on a nil or never-configured Config.
func (c *Config) Context() context.Context {
	if c == nil {
		return nil
	}
	return c.ctx
}

// SetContext installs ctx as the cooperative-cancellation token used by
// subsequent Factor/Roots/GCD calls made through this Config.
func (c *Config) SetContext(ctx context.Context) {
	c.ctx = ctx
}
