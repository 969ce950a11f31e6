package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-store/models"
	"school-store/services"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// Get godoc
// @Summary Get settings
// @Description Get the class/division lists, seeding defaults on first read
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /api/settings [get]
func (ctrl *SettingsController) Get(c *gin.Context) {
	settings, err := ctrl.settings.GetOrCreate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update settings
// @Description Replace the class and/or division lists wholesale
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateSettingsRequest true "Settings"
// @Success 200 {object} models.Settings
// @Router /api/settings [put]
func (ctrl *SettingsController) Update(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid settings data"})
		return
	}

	settings, err := ctrl.settings.Replace(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
