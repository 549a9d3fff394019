package repository

import (
	"context"
	"errors"
	"regexp"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPartners returns every partner whose name or subject contains search
// (case-insensitive), ordered by sortKey when it is a known key.
func (r *Repository) ListPartners(ctx context.Context, search, sortKey string) ([]models.PartnerProfile, error) {
	opts := options.Find()
	if sort := partnerSort(sortKey); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.partners.Find(ctx, partnerSearchFilter(search), opts)
	if err != nil {
		return nil, apperr.Internal("find partners", err)
	}

	var partners []models.PartnerProfile
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, apperr.Internal("decode partners", err)
	}
	if partners == nil {
		partners = []models.PartnerProfile{}
	}
	return partners, nil
}

func partnerSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	// the term is matched literally, not as a pattern
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"subject": pattern},
		},
	}
}

func partnerSort(sortKey string) bson.D {
	switch sortKey {
	case models.SortByRating:
		return bson.D{{Key: "rating", Value: -1}}
	case models.SortByExperience:
		return bson.D{{Key: "experienceLevel", Value: 1}}
	default:
		return nil
	}
}

func (r *Repository) GetPartner(ctx context.Context, id string) (*models.PartnerProfile, error) {
	oid, err := parseObjectID(id, "partner")
	if err != nil {
		return nil, err
	}
	return r.findPartner(ctx, bson.M{"_id": oid})
}

// CreatePartner inserts the profile owned by ownerEmail and returns the new
// id in hex.
func (r *Repository) CreatePartner(ctx context.Context, input *models.CreatePartnerInput, ownerEmail string) (string, error) {
	partner := models.NewPartnerProfile(input, ownerEmail, r.now())

	res, err := r.partners.InsertOne(ctx, partner)
	if err != nil {
		return "", apperr.Internal("insert partner", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperr.Internal("insert partner", errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *Repository) GetPartnerByOwner(ctx context.Context, ownerEmail string) (*models.PartnerProfile, error) {
	if ownerEmail == "" {
		return nil, apperr.Validation("Email is required")
	}
	partner, err := r.findPartner(ctx, bson.M{"email": ownerEmail})
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, apperr.NotFound("Partner profile not found")
	}
	return partner, err
}

func (r *Repository) findPartner(ctx context.Context, filter bson.M) (*models.PartnerProfile, error) {
	var partner models.PartnerProfile
	err := r.partners.FindOne(ctx, filter).Decode(&partner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Partner not found")
	}
	if err != nil {
		return nil, apperr.Internal("find partner", err)
	}
	return &partner, nil
}
