package handlers

import (
	"errors"
	"io"
	"net/http"

	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
	"studymate-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPartners: GET /partners?search=&sort=rating|experience
func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.store.ListPartners(c.Request.Context(), c.Query("search"), c.Query("sort"))
	if err != nil {
		h.fail(c, err, "Failed to fetch partners")
		return
	}
	c.JSON(http.StatusOK, partners)
}

// GetPartner: GET /partners/:id
func (h *Handler) GetPartner(c *gin.Context) {
	partner, err := h.store.GetPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch partner")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"partner": partner})
}

type requestPartnerInput struct {
	UserEmail string `json:"userEmail"`
}

// RequestPartner: POST /partners/:id/request. Public, the requester is
// whatever email the body names.
func (h *Handler) RequestPartner(c *gin.Context) {
	var input requestPartnerInput
	// 1. An empty body is treated like a missing email
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, bindError(err), "Invalid request body")
		return
	}

	// 2. Increment + snapshot
	request, err := h.store.RequestPartner(c.Request.Context(), c.Param("id"), input.UserEmail)
	if err != nil {
		h.fail(c, err, "Failed to save request")
		return
	}

	// 3. Best-effort push to the partner
	if err := h.notifier.PartnerRequested(c.Request.Context(), request); err != nil {
		h.logger.Warn("partner request notification failed",
			zap.String("partner_id", request.PartnerID),
			zap.Error(err))
	}

	utils.APIResponse(c, http.StatusOK, true, "Request saved", gin.H{
		"result": models.InsertResult{
			Acknowledged: true,
			InsertedID:   request.ID.Hex(),
		},
	})
}

// CreatePartner: POST /partners (auth). The owner is the verified caller.
func (h *Handler) CreatePartner(c *gin.Context) {
	var input models.CreatePartnerInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err, "Invalid request body")
		return
	}

	id, err := h.store.CreatePartner(c.Request.Context(), &input, middleware.UserEmail(c))
	if err != nil {
		h.fail(c, err, "Failed to create partner profile")
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Partner profile created successfully", gin.H{
		"partnerId": id,
	})
}

// MyProfile: GET /partners/my-profile (auth)
func (h *Handler) MyProfile(c *gin.Context) {
	partner, err := h.store.GetPartnerByOwner(c.Request.Context(), middleware.UserEmail(c))
	if err != nil {
		h.fail(c, err, "Server error")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"partner": partner})
}
