package repository

import (
	"time"

	"studymate-backend/internal/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PartnerCollection = "allPartner"
	RequestCollection = "partnerRequests"
)

// Repository does all data access for partners and partner requests. It holds
// collections of one long-lived client, so it is safe for concurrent use.
type Repository struct {
	partners *mongo.Collection
	requests *mongo.Collection
	now      func() time.Time
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		partners: db.Collection(PartnerCollection),
		requests: db.Collection(RequestCollection),
		now:      time.Now,
	}
}

func parseObjectID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid " + what + " ID")
	}
	return oid, nil
}
