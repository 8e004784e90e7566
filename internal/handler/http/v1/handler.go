package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/crime_pulse/internal/config"
	"github.com/shenikar/crime_pulse/internal/service"
)

type Handler struct {
	dashboard service.Dashboard
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(dashboard service.Dashboard, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboard: dashboard,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// @Summary Get map features
// @Description Get the filtered crime records as a GeoJSON feature collection for the map engine.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "GeoJSON FeatureCollection"
// @Router /map/features [get]
func (h *Handler) getMapFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.MapFeatures())
}

// @Summary Get map configuration
// @Description Get map provider configuration for the frontend.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {object} MapConfigResponse
// @Router /map/config [get]
func (h *Handler) getMapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, MapConfigResponse{MapboxToken: h.cfg.MapboxToken})
}

// @Summary Get filtered crime records
// @Description Get crime records passing the current crime type filter, newest first.
// @Tags Crimes
// @Accept json
// @Produce json
// @Success 200 {object} CrimesResponse
// @Router /crimes [get]
func (h *Handler) listCrimes(c *gin.Context) {
	crimes := h.dashboard.Crimes()
	c.JSON(http.StatusOK, CrimesResponse{
		Count: len(crimes),
		Data:  ModelsToCrimeResponses(crimes),
	})
}

// @Summary Get crime types
// @Description Get all known crime types and the current user selection.
// @Tags Filter
// @Accept json
// @Produce json
// @Success 200 {object} CrimeTypesResponse
// @Router /crime-types [get]
func (h *Handler) getCrimeTypes(c *gin.Context) {
	available, selected := h.dashboard.CrimeTypes()
	c.JSON(http.StatusOK, CrimeTypesResponse{Available: available, Selected: selected})
}

// @Summary Toggle a crime type
// @Description Add or remove one crime type from the selection.
// @Tags Filter
// @Accept json
// @Produce json
// @Param crime_type body ToggleCrimeTypeRequest true "Crime type toggle request"
// @Success 200 {object} CrimeTypesResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /crime-types/toggle [post]
func (h *Handler) toggleCrimeType(c *gin.Context) {
	var input ToggleCrimeTypeRequest
	log := h.logger.WithField("method", "toggleCrimeType")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.dashboard.ToggleCrimeType(input.CrimeType)

	available, selected := h.dashboard.CrimeTypes()
	c.JSON(http.StatusOK, CrimeTypesResponse{Available: available, Selected: selected})
}

// @Summary Select all crime types
// @Description Set the selection to every known crime type.
// @Tags Filter
// @Accept json
// @Produce json
// @Success 200 {object} CrimeTypesResponse
// @Router /crime-types/select-all [post]
func (h *Handler) selectAllCrimeTypes(c *gin.Context) {
	h.dashboard.SelectAllCrimeTypes()

	available, selected := h.dashboard.CrimeTypes()
	c.JSON(http.StatusOK, CrimeTypesResponse{Available: available, Selected: selected})
}

// @Summary Clear crime type selection
// @Description Empty the selection. An empty selection shows all records on the map.
// @Tags Filter
// @Accept json
// @Produce json
// @Success 200 {object} CrimeTypesResponse
// @Router /crime-types/clear [post]
func (h *Handler) clearCrimeTypes(c *gin.Context) {
	h.dashboard.ClearCrimeTypes()

	available, selected := h.dashboard.CrimeTypes()
	c.JSON(http.StatusOK, CrimeTypesResponse{Available: available, Selected: selected})
}

// @Summary Get aggregate statistics
// @Description Get the last successfully fetched aggregate crime statistics.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} models.CrimeStats
// @Failure 404 {object} map[string]string "Stats not fetched yet"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.dashboard.Stats()
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stats not available yet"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get analytics
// @Description Get the last successfully fetched server-side analytics: hotspots, time patterns, trends and patrol suggestions.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.Analytics
// @Router /analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Analytics())
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"loading": h.dashboard.Loading(),
	})
}
