package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hometown/catalog"
)

// CatalogHandler serves the static reference data the frontend renders from.
// Promo codes are deliberately not exposed; they validate server-side.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// GetCatalog returns the full service catalog snapshot.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serviceTypes": h.Catalog.ServiceTypes,
		"mainServices": h.Catalog.MainServices,
		"timeSlots":    h.Catalog.TimeSlots,
	})
}

// GetTimeSlots returns just the offered appointment windows.
func (h *CatalogHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Catalog.TimeSlots})
}
