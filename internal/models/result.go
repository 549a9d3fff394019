package models

// InsertResult is returned to the client after a request snapshot is saved.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult is returned by DELETE /my-requests/:id. DeletedCount is 0 when
// the id did not exist.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
