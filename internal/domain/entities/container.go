package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewSession); err != nil {
		return err
	}
	return container.Provide(NewBuildInfo)
}
