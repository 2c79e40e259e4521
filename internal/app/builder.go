package app

import "go.trai.ch/landdeploy/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (c *Components) SetLogJSON(enable bool) {
	if l, ok := c.Logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}
