package smt

import (
	"errors"

	"github.com/mitchellh/go-z3"
)

// ErrBackend reports a fault inside the decision procedure itself, as opposed
// to a constraint system simply being unsatisfiable.
var ErrBackend = errors.New("solver backend failure")

// A Context owns the Z3 context against which expressions and solvers are
// allocated. It must be closed once no session needs it anymore.
type Context struct {
	ctx *z3.Context
}

// NewContext allocates a fresh backend context with model construction
// enabled.
func NewContext() *Context {
	cfg := z3.NewConfig()
	cfg.SetParamValue("model", "true")
	ctx := z3.NewContext(cfg)
	cfg.Close()
	return &Context{ctx: ctx}
}

// Close frees the underlying Z3 context. Sessions created from this context
// must be closed first.
func (c *Context) Close() error {
	return c.ctx.Close()
}
