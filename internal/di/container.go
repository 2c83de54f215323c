// Package di provides dependency injection configuration for the Matchboard server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/matchboardapp/matchboard-server/internal/config"
	"github.com/matchboardapp/matchboard-server/internal/di/providers"
	"github.com/matchboardapp/matchboard-server/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Data layer
	do.Provide(injector, providers.ProvideAdapter)
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideStore)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is
// running. This triggers lazy initialization of the full graph.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.AdapterHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
