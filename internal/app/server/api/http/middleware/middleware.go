package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container accumulates a middleware chain while handlers are wired up.
// Each handler takes the chain built so far; GetAllAndClear hands it over
// and resets the container for the next handler.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
