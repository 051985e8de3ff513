package app

import (
	"log/slog"

	"obliquity.pulsartiming.org/internal/refdata"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     Config
	RefConfig  refdata.Config
	Logger     *slog.Logger
	RefManager *refdata.Manager
}
