package handlers

import (
	"errors"

	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/internal/metrics"
	"github.com/dimitrije/teampulse-api/internal/models"
	"github.com/dimitrije/teampulse-api/internal/services"
	"github.com/dimitrije/teampulse-api/internal/validation"
	"github.com/dimitrije/teampulse-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type TeamHandler struct {
	teamService TeamServiceInterface
}

func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *drift.Context) {
	members, err := h.teamService.GetAllMembers(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list team members")
		return
	}

	response := make([]dto.TeamMemberResponse, len(members))
	for i := range members {
		response[i] = dto.NewTeamMemberResponse(&members[i])
	}

	_ = c.JSON(200, response)
}

func (h *TeamHandler) Get(c *drift.Context) {
	member, err := h.teamService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isValidationError(err) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to get team member")
		return
	}
	if member == nil {
		c.NotFound("Team member not found")
		return
	}

	_ = c.JSON(200, dto.NewTeamMemberResponse(member))
}

// SubmitMood answers 400 for a missing member as well as for bad input.
func (h *TeamHandler) SubmitMood(c *drift.Context) {
	var req dto.SubmitMoodRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	memberID := c.Param("id")
	entry, err := h.teamService.SubmitMood(c.Request.Context(), memberID, req.Emoji, req.Label)
	if err != nil {
		if isValidationError(err) || errors.Is(err, services.ErrMemberNotFound) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to submit mood")
		return
	}

	metrics.MoodSubmissions.WithLabelValues(metrics.MoodLabel(entry.Label)).Inc()
	log := logger.WithMember(entry.MemberID)
	log.Debug().Str("entry_id", entry.ID).Str("label", entry.Label).Msg("mood submitted")

	_ = c.JSON(201, dto.NewMoodEntryResponse(*entry))
}

func (h *TeamHandler) Create(c *drift.Context) {
	var req dto.CreateMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	member, err := h.teamService.CreateMember(c.Request.Context(), req.Name, req.Role, status, req.AvatarURL)
	if err != nil {
		if isValidationError(err) {
			c.BadRequest(err.Error())
			return
		}
		internalError(c, err, "failed to create team member")
		return
	}

	_ = c.JSON(201, dto.NewTeamMemberResponse(member))
}

func (h *TeamHandler) UpdateStatus(c *drift.Context) {
	var req dto.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	member, err := h.teamService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case isValidationError(err):
			c.BadRequest(err.Error())
		case errors.Is(err, services.ErrMemberNotFound):
			c.NotFound("Team member not found")
		default:
			internalError(c, err, "failed to update team member status")
		}
		return
	}

	_ = c.JSON(200, dto.NewTeamMemberResponse(member))
}

func (h *TeamHandler) Delete(c *drift.Context) {
	err := h.teamService.DeleteMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case isValidationError(err):
			c.BadRequest(err.Error())
		case errors.Is(err, services.ErrMemberNotFound):
			c.NotFound("Team member not found")
		default:
			internalError(c, err, "failed to delete team member")
		}
		return
	}

	_ = c.JSON(200, map[string]string{"message": "team member deleted"})
}

func isValidationError(err error) bool {
	return errors.Is(err, validation.ErrInvalidIdentifier) || errors.Is(err, validation.ErrInvalidField)
}

// internalError logs the cause and hides it from the client.
func internalError(c *drift.Context, err error, message string) {
	logger.Get().Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	c.InternalServerError(message)
}
