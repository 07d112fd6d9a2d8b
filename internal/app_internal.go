package internal

import (
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/infrastructure/controllers"
)

// AppInternal is the fully wired application: the root command and the
// controllers mounted below it.
type AppInternal struct {
	root        *controllers.RootController
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the injected controllers.
func NewAppInternal(root *controllers.RootController, subcommands *[]entities.Controller) *AppInternal {
	return &AppInternal{
		root:        root,
		controllers: *subcommands,
	}
}

// GetRoot returns the controller of the top-level command.
func (it *AppInternal) GetRoot() *controllers.RootController {
	return it.root
}

// GetControllers returns the top-level subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
