package handlers_test

import (
	"context"
	"sync"
	"time"

	"studymate-backend/internal/apperr"
	"studymate-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore keeps partners and requests in memory with the same error
// contract as the Mongo repository.
type fakeStore struct {
	mu       sync.Mutex
	partners []*models.PartnerProfile
	requests []*models.PartnerRequest

	err error // returned by every call when set

	lastSearch string
	lastSort   string
	lastOwner  string
	lastUpdate bson.M
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) addPartner(p models.PartnerProfile) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.partners = append(f.partners, &p)
	return p.ID.Hex()
}

func (f *fakeStore) partnerByID(id primitive.ObjectID) *models.PartnerProfile {
	for _, p := range f.partners {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fakeStore) ListPartners(_ context.Context, search, sortKey string) ([]models.PartnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSearch, f.lastSort = search, sortKey
	if f.err != nil {
		return nil, f.err
	}
	out := []models.PartnerProfile{}
	for _, p := range f.partners {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) GetPartner(_ context.Context, id string) (*models.PartnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("Invalid partner ID")
	}
	p := f.partnerByID(oid)
	if p == nil {
		return nil, apperr.NotFound("Partner not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) CreatePartner(_ context.Context, input *models.CreatePartnerInput, owner string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.addPartner(*models.NewPartnerProfile(input, owner, time.Now())), nil
}

func (f *fakeStore) GetPartnerByOwner(_ context.Context, owner string) (*models.PartnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.partners {
		if p.Email == owner {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("Partner profile not found")
}

func (f *fakeStore) RequestPartner(_ context.Context, id, requester string) (*models.PartnerRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if requester == "" {
		return nil, apperr.Validation("User email required")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("Invalid partner ID")
	}
	p := f.partnerByID(oid)
	if p == nil {
		return nil, apperr.NotFound("Partner not found")
	}

	before := *p
	p.PartnerCount++
	req := models.NewPartnerRequest(&before, requester, time.Now())
	req.ID = primitive.NewObjectID()
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeStore) ListRequestsByRequester(_ context.Context, requester string) ([]models.PartnerRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.PartnerRequest{}
	for _, r := range f.requests {
		if r.RequestedBy == requester {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) findRequest(id, owner string) (*models.PartnerRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("Invalid request ID")
	}
	for _, r := range f.requests {
		if r.ID == oid && (owner == "" || r.RequestedBy == owner) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateRequest(_ context.Context, id string, input *models.UpdateRequestInput, owner string) (*models.PartnerRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastOwner = owner
	f.lastUpdate = input.SetFields()
	if f.err != nil {
		return nil, f.err
	}
	r, err := f.findRequest(id, owner)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("Request not found")
	}
	if input.StudyMode != nil {
		r.StudyMode = *input.StudyMode
	}
	if input.AvailabilityTime != nil {
		r.AvailabilityTime = *input.AvailabilityTime
	}
	if input.Location != nil {
		r.Location = *input.Location
	}
	if input.PartnerCount != nil {
		r.PartnerCount = int(*input.PartnerCount)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) DeleteRequest(_ context.Context, id, owner string) (*models.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastOwner = owner
	if f.err != nil {
		return nil, f.err
	}
	r, err := f.findRequest(id, owner)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	kept := f.requests[:0]
	for _, other := range f.requests {
		if other != r {
			kept = append(kept, other)
		}
	}
	f.requests = kept
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
