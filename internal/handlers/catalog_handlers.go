package handlers

import (
	"net/http"

	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the package and trainer lists.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// ListPackages handles GET /api/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	gymID := middleware.GymID(c)

	packages, degraded := services.Resolve(middleware.BackendAvailable(c),
		models.DemoPackages,
		func() ([]models.Package, error) { return h.catalogService.ListPackages(gymID) },
	)
	if degraded {
		markDegraded(c)
	}
	c.JSON(http.StatusOK, gin.H{"data": packages, "error": nil})
}

// ListTrainers handles GET /api/trainers.
func (h *CatalogHandler) ListTrainers(c *gin.Context) {
	gymID := middleware.GymID(c)

	trainers, degraded := services.Resolve(middleware.BackendAvailable(c),
		models.DemoTrainers,
		func() ([]models.Trainer, error) { return h.catalogService.ListTrainers(gymID) },
	)
	if degraded {
		markDegraded(c)
	}
	c.JSON(http.StatusOK, gin.H{"data": trainers, "error": nil})
}
