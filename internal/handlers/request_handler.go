package handlers

import (
	"net/http"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
	"studymate-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MyRequests: GET /my-requests (auth)
func (h *Handler) MyRequests(c *gin.Context) {
	requests, err := h.store.ListRequestsByRequester(c.Request.Context(), middleware.UserEmail(c))
	if err != nil {
		h.fail(c, err, "Failed to fetch requests")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"requests": requests})
}

// UpdateRequest: PUT /my-requests/:id (auth)
//
// An id that matches nothing still answers 200 with "updated": null; clients
// depend on that.
func (h *Handler) UpdateRequest(c *gin.Context) {
	var input models.UpdateRequestInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err, "Invalid request body")
		return
	}

	updated, err := h.store.UpdateRequest(c.Request.Context(), c.Param("id"), &input, h.owner(c))
	if err != nil && !apperr.Is(err, apperr.KindNotFound) {
		h.fail(c, err, "Failed to update request")
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"updated": updated})
}

// DeleteRequest: DELETE /my-requests/:id (auth). Deleting twice is fine.
func (h *Handler) DeleteRequest(c *gin.Context) {
	result, err := h.store.DeleteRequest(c.Request.Context(), c.Param("id"), h.owner(c))
	if err != nil {
		h.fail(c, err, "Failed to delete request")
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"result": result})
}

// owner is the requestedBy filter for update/delete; "" when ownership is
// not enforced.
func (h *Handler) owner(c *gin.Context) string {
	if !h.enforceOwnership {
		return ""
	}
	return middleware.UserEmail(c)
}
