package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerProfile is a document in the 'allPartner' collection.
type PartnerProfile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	ProfileImage     string             `bson:"profileimage" json:"profileimage"`
	Subject          string             `bson:"subject" json:"subject"`
	StudyMode        string             `bson:"studyMode" json:"studyMode"`
	AvailabilityTime string             `bson:"availabilityTime" json:"availabilityTime"`
	Location         string             `bson:"location" json:"location"`
	ExperienceLevel  string             `bson:"experienceLevel" json:"experienceLevel"`
	Rating           float64            `bson:"rating" json:"rating"`
	PartnerCount     int                `bson:"partnerCount" json:"partnerCount"`
	Email            string             `bson:"email" json:"email"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreatePartnerInput is the body of POST /partners. Fields are validated in
// declaration order; rating, partnerCount, email and createdAt are not
// accepted from clients.
type CreatePartnerInput struct {
	Name             string `json:"name" binding:"required,notblank"`
	ProfileImage     string `json:"profileimage" binding:"required,notblank"`
	Subject          string `json:"subject" binding:"required,notblank"`
	StudyMode        string `json:"studyMode" binding:"required,notblank"`
	AvailabilityTime string `json:"availabilityTime" binding:"required,notblank"`
	Location         string `json:"location" binding:"required,notblank"`
	ExperienceLevel  string `json:"experienceLevel" binding:"required,notblank"`
}

// RequiredPartnerFields lists the json names of CreatePartnerInput in
// validation order.
var RequiredPartnerFields = []string{
	"name",
	"profileimage",
	"subject",
	"studyMode",
	"availabilityTime",
	"location",
	"experienceLevel",
}

// NewPartnerProfile builds a new profile owned by ownerEmail.
func NewPartnerProfile(input *CreatePartnerInput, ownerEmail string, now time.Time) *PartnerProfile {
	return &PartnerProfile{
		Name:             input.Name,
		ProfileImage:     input.ProfileImage,
		Subject:          input.Subject,
		StudyMode:        input.StudyMode,
		AvailabilityTime: input.AvailabilityTime,
		Location:         input.Location,
		ExperienceLevel:  input.ExperienceLevel,
		Rating:           0,
		PartnerCount:     0,
		Email:            ownerEmail,
		CreatedAt:        now,
	}
}

// Sort keys accepted by GET /partners.
const (
	SortByRating     = "rating"
	SortByExperience = "experience"
)
