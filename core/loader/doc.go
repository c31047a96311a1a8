// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is enabled
// and registers its routes on the shared router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads enabled features in registration order
// via LoadAll.
package loader
