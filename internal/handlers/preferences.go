package handlers

import (
	"github.com/dimitrije/teampulse-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PreferencesHandler struct {
	preferencesService PreferencesServiceInterface
}

func NewPreferencesHandler(preferencesService PreferencesServiceInterface) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

func (h *PreferencesHandler) Get(c *drift.Context) {
	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if isValidationError(err) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to get preferences")
		return
	}

	_ = c.JSON(200, dto.NewPreferencesResponse(prefs))
}

func (h *PreferencesHandler) Update(c *drift.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	prefs, err := h.preferencesService.UpdatePreferences(c.Request.Context(), c.Param("userId"), req.Username, req.DarkMode)
	if err != nil {
		if isValidationError(err) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to update preferences")
		return
	}

	_ = c.JSON(200, dto.NewPreferencesResponse(prefs))
}

func (h *PreferencesHandler) Delete(c *drift.Context) {
	deleted, err := h.preferencesService.DeletePreferences(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if isValidationError(err) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to delete preferences")
		return
	}
	if !deleted {
		c.NotFound("Preferences not found")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "preferences deleted"})
}
