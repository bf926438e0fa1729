// controllers/membership_controller.go
package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ExtendMembershipPayload struct {
	MembershipID uint `json:"membershipId" binding:"required"`
}

type MembershipController struct {
	MembershipSvc *services.MembershipService
}

func NewMembershipController(svc *services.MembershipService) *MembershipController {
	return &MembershipController{MembershipSvc: svc}
}

// GetMembership — GET /membership/getMembership (caller's active membership)
func (mc *MembershipController) GetMembership(c *gin.Context) {
	membership, err := mc.MembershipSvc.GetActive(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to retrieve membership", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Membership retrieved", gin.H{"membership": membership})
}

// ExtendMembership — POST /membership/extendMembership
func (mc *MembershipController) ExtendMembership(c *gin.Context) {
	var payload ExtendMembershipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	membership, err := mc.MembershipSvc.Extend(payload.MembershipID, middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to extend membership", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Membership extended", gin.H{"membership": membership})
}
