package employee

import (
	"hris-sync/core/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the employee sync feature.
func NewFeature(loader config.Loader, logger *zap.Logger) *Feature {
	return NewFeatureWithService(NewService(loader, logger))
}

// NewFeatureWithService wraps an existing service.
func NewFeatureWithService(svc *Service) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "employee"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
