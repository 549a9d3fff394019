package repository

import (
	"context"
	"errors"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestPartner bumps the partner's partnerCount and stores a snapshot of the
// partner for requester.
//
// The read, the increment and the insert are three separate store calls. Two
// concurrent requests for one partner can embed the same partnerCount, and a
// failed insert leaves the increment in place.
func (r *Repository) RequestPartner(ctx context.Context, partnerID, requester string) (*models.PartnerRequest, error) {
	if requester == "" {
		return nil, apperr.Validation("User email required")
	}
	oid, err := parseObjectID(partnerID, "partner")
	if err != nil {
		return nil, err
	}

	partner, err := r.findPartner(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}

	_, err = r.partners.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"partnerCount": 1}},
	)
	if err != nil {
		return nil, apperr.Internal("increment partnerCount", err)
	}

	request := models.NewPartnerRequest(partner, requester, r.now())
	res, err := r.requests.InsertOne(ctx, request)
	if err != nil {
		return nil, apperr.Internal("insert partner request", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		request.ID = id
	}
	return request, nil
}

func (r *Repository) ListRequestsByRequester(ctx context.Context, requester string) ([]models.PartnerRequest, error) {
	cursor, err := r.requests.Find(ctx, bson.M{"requestedBy": requester})
	if err != nil {
		return nil, apperr.Internal("find partner requests", err)
	}

	var requests []models.PartnerRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, apperr.Internal("decode partner requests", err)
	}
	if requests == nil {
		requests = []models.PartnerRequest{}
	}
	return requests, nil
}

// UpdateRequest applies the provided fields of input and reads the record
// back. Updating an id that does not exist is not an error for the update
// itself; the read-back then reports NotFound.
//
// owner restricts the match to requests made by owner. Pass "" to match any
// request, which is the default policy.
func (r *Repository) UpdateRequest(ctx context.Context, id string, input *models.UpdateRequestInput, owner string) (*models.PartnerRequest, error) {
	oid, err := parseObjectID(id, "request")
	if err != nil {
		return nil, err
	}
	set := input.SetFields()

	filter := requestFilter(oid, owner)
	if len(set) > 0 {
		if _, err := r.requests.UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
			return nil, apperr.Internal("update partner request", err)
		}
	}

	var updated models.PartnerRequest
	err = r.requests.FindOne(ctx, filter).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Request not found")
	}
	if err != nil {
		return nil, apperr.Internal("find partner request", err)
	}
	return &updated, nil
}

// DeleteRequest removes the request. A missing id yields DeletedCount 0 and
// no error.
func (r *Repository) DeleteRequest(ctx context.Context, id, owner string) (*models.DeleteResult, error) {
	oid, err := parseObjectID(id, "request")
	if err != nil {
		return nil, err
	}

	res, err := r.requests.DeleteOne(ctx, requestFilter(oid, owner))
	if err != nil {
		return nil, apperr.Internal("delete partner request", err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func requestFilter(id primitive.ObjectID, owner string) bson.M {
	filter := bson.M{"_id": id}
	if owner != "" {
		filter["requestedBy"] = owner
	}
	return filter
}
