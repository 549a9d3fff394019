package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerRequest is a point-in-time copy of a partner, saved when a user
// requests that partner. Later edits of the partner do not touch it.
type PartnerRequest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PartnerID        string             `bson:"partnerId" json:"partnerId"`
	PartnerName      string             `bson:"partnerName" json:"partnerName"`
	PartnerImage     string             `bson:"partnerImage" json:"partnerImage"`
	Subject          string             `bson:"subject" json:"subject"`
	StudyMode        string             `bson:"studyMode" json:"studyMode"`
	AvailabilityTime string             `bson:"availabilityTime" json:"availabilityTime"`
	Location         string             `bson:"location" json:"location"`
	ExperienceLevel  string             `bson:"experienceLevel" json:"experienceLevel"`
	Rating           float64            `bson:"rating" json:"rating"`
	PartnerCount     int                `bson:"partnerCount" json:"partnerCount"`
	RequestedBy      string             `bson:"requestedBy" json:"requestedBy"`
	RequestedAt      time.Time          `bson:"requestedAt" json:"requestedAt"`
}

// NewPartnerRequest snapshots partner. partnerCount is the value after the
// increment that accompanies every request.
func NewPartnerRequest(partner *PartnerProfile, requestedBy string, now time.Time) *PartnerRequest {
	return &PartnerRequest{
		PartnerID:        partner.ID.Hex(),
		PartnerName:      partner.Name,
		PartnerImage:     partner.ProfileImage,
		Subject:          partner.Subject,
		StudyMode:        partner.StudyMode,
		AvailabilityTime: partner.AvailabilityTime,
		Location:         partner.Location,
		ExperienceLevel:  partner.ExperienceLevel,
		Rating:           partner.Rating,
		PartnerCount:     partner.PartnerCount + 1,
		RequestedBy:      requestedBy,
		RequestedAt:      now,
	}
}

// UpdateRequestInput is the body of PUT /my-requests/:id. Only non-nil fields
// are written; _id, partnerId, requestedBy and requestedAt cannot be changed.
type UpdateRequestInput struct {
	PartnerName      *string  `json:"partnerName"`
	PartnerImage     *string  `json:"partnerImage"`
	Subject          *string  `json:"subject"`
	StudyMode        *string  `json:"studyMode"`
	AvailabilityTime *string  `json:"availabilityTime"`
	Location         *string  `json:"location"`
	ExperienceLevel  *string  `json:"experienceLevel"`
	Rating           *float64 `json:"rating" binding:"omitempty,gte=0"`
	PartnerCount     *int64   `json:"partnerCount" binding:"omitempty,gte=0"`
}

// SetFields returns the $set document for the provided fields. It is empty
// when nothing was provided.
func (in *UpdateRequestInput) SetFields() bson.M {
	set := bson.M{}
	if in == nil {
		return set
	}
	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setString("partnerName", in.PartnerName)
	setString("partnerImage", in.PartnerImage)
	setString("subject", in.Subject)
	setString("studyMode", in.StudyMode)
	setString("availabilityTime", in.AvailabilityTime)
	setString("location", in.Location)
	setString("experienceLevel", in.ExperienceLevel)
	if in.Rating != nil {
		set["rating"] = *in.Rating
	}
	if in.PartnerCount != nil {
		set["partnerCount"] = *in.PartnerCount
	}
	return set
}
