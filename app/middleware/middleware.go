// Package middleware holds the dispatch hook chain and the stock
// middlewares shipped with the framework.
package middleware

import (
	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

// Chain is an ordered middleware list. Before hooks run in registration
// order (first added is outermost), After hooks in reverse, mirroring a
// nested-call structure. Append-only at startup; traversal allocates
// nothing and is safe for concurrent calls.
type Chain struct {
	mws []types.Middleware
}

// Add appends mw to the end of the chain.
func (c *Chain) Add(mw types.Middleware) {
	if mw == nil {
		panic("middleware: nil middleware passed to Add")
	}
	c.mws = append(c.mws, mw)
}

func (c *Chain) Len() int { return len(c.mws) }

// Before runs every Before hook in registration order. The first error
// aborts the chain.
func (c *Chain) Before(req *types.Request) error {
	for _, mw := range c.mws {
		if err := mw.Before(req); err != nil {
			return err
		}
	}
	return nil
}

// After runs every After hook in reverse registration order, threading
// the response through so each hook may mutate or replace it. The first
// error aborts the chain.
func (c *Chain) After(req *types.Request, res *types.Response) (*types.Response, error) {
	for i := len(c.mws) - 1; i >= 0; i-- {
		next, err := c.mws[i].After(req, res)
		if err != nil {
			return nil, err
		}
		if next != nil {
			res = next
		}
	}
	return res, nil
}
