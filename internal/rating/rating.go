// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package rating implements score submission and aggregate computation.
//
// # Consistency Model
//
// One rating row per (user, store) pair, enforced by a database unique
// constraint. Submissions are a single atomic upsert statement, so two
// concurrent submissions from the same user can never produce two rows.
// Aggregates are always derived from the rating rows; the cache layer is an
// optimization that is invalidated inside the submit path.
package rating

import "time"

// ScoreMin and ScoreMax bound the accepted rating scale (inclusive).
const (
	ScoreMin = 1
	ScoreMax = 5
)

// Rating represents a single user's current score for a store.
//
// Resubmitting overwrites the score in place. UpdatedAt reflects the most
// recent submission; CreatedAt the first.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Aggregate is the derived (count, average) pair for a store.
//
// Average is the mean score rounded half away from zero to one decimal, or
// 0.0 when Count is zero.
type Aggregate struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// SubmitResult is the outcome of a rating submission.
type SubmitResult struct {
	Rating *Rating `json:"rating"`
	// Created is true for a first-time rating, false for an overwrite.
	Created bool `json:"created"`
	// Aggregate is the store's aggregate recomputed after this write.
	Aggregate Aggregate `json:"aggregate"`
}

// StoreRating is a rating row joined with the submitter's identity, as shown
// on the store owner's dashboard.
type StoreRating struct {
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}
