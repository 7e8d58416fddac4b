package schema

// RatingsRatingTable represents the 'ratings' table
type RatingsRatingTable struct {
	Table     string
	ID        string
	UserID    string
	StoreID   string
	Score     string
	CreatedAt string
	UpdatedAt string
}

// RatingsRating is the schema definition for ratings
//
// The UNIQUE(user_id, store_id) constraint carries the one-rating-per-pair
// invariant; every write path must go through the conflict-aware upsert.
var RatingsRating = RatingsRatingTable{
	Table:     "ratings",
	ID:        "id",
	UserID:    "user_id",
	StoreID:   "store_id",
	Score:     "score",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
