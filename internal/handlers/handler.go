package handlers

import (
	"context"
	"net/http"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/models"
	"studymate-backend/internal/notify"
	"studymate-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store is the data access the handlers need. *repository.Repository
// implements it.
type Store interface {
	ListPartners(ctx context.Context, search, sortKey string) ([]models.PartnerProfile, error)
	GetPartner(ctx context.Context, id string) (*models.PartnerProfile, error)
	CreatePartner(ctx context.Context, input *models.CreatePartnerInput, ownerEmail string) (string, error)
	GetPartnerByOwner(ctx context.Context, ownerEmail string) (*models.PartnerProfile, error)
	RequestPartner(ctx context.Context, partnerID, requester string) (*models.PartnerRequest, error)
	ListRequestsByRequester(ctx context.Context, requester string) ([]models.PartnerRequest, error)
	UpdateRequest(ctx context.Context, id string, input *models.UpdateRequestInput, owner string) (*models.PartnerRequest, error)
	DeleteRequest(ctx context.Context, id, owner string) (*models.DeleteResult, error)
}

type Handler struct {
	store    Store
	notifier notify.Notifier
	logger   *zap.Logger

	// enforceOwnership makes update/delete of a request match only the
	// caller's own requests.
	enforceOwnership bool
}

func New(store Store, notifier notify.Notifier, logger *zap.Logger, enforceOwnership bool) *Handler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Handler{
		store:            store,
		notifier:         notifier,
		logger:           logger,
		enforceOwnership: enforceOwnership,
	}
}

// Root is the liveness probe.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "StudyMate Partner API running")
}

// fail logs internal errors and writes the error envelope.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.logger.Error(fallback,
			zap.String("route", c.FullPath()),
			zap.Error(err))
		_ = c.Error(err)
	}
	errorResponse(c, err, fallback)
}

// errorResponse maps err to its status code. Internal errors are reported
// with fallback instead of their own text.
func errorResponse(c *gin.Context, err error, fallback string) {
	utils.APIResponse(c, apperr.HTTPStatus(err), false, apperr.PublicMessage(err, fallback), nil)
}
