package helpers

import (
	"toolbox/internal/logging"
	"toolbox/internal/tui/styles"
)

// UIContext carries environment information needed for creating UI models
type UIContext struct {
	Width  int
	Height int
	Logger *logging.AppLogger
	Styles styles.Styles
}

func NewUIContext(width, height int, logger *logging.AppLogger, st styles.Styles) UIContext {
	return UIContext{
		Width:  width,
		Height: height,
		Logger: logger,
		Styles: st,
	}
}

// HasValidDimensions checks if the context has valid window dimensions
func (ctx UIContext) HasValidDimensions() bool {
	return ctx.Width > 0 && ctx.Height > 0
}
