package chart

import "errors"

// Kind identifies a widget type.
type Kind string

const (
	KindChart Kind = "chart"
	KindTA    Kind = "technical_analysis"
)

// ErrContainerBusy is returned when mounting into an occupied container.
var ErrContainerBusy = errors.New("container already has a widget")

// WidgetConfig is a vendor configuration for one widget.
type WidgetConfig interface {
	Kind() Kind
	Target() (symbol, interval string)
}

// Provider mounts vendor widgets into named containers.
type Provider interface {
	// Mount instantiates a widget in container.
	Mount(container string, cfg WidgetConfig) error

	// Unmount removes whatever widget container holds. Unmounting an
	// empty container is not an error.
	Unmount(container string) error
}
