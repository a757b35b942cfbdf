// Package recipes collects recipe ratings and keeps each recipe's average and
// count current.
package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrRatingNotFound = errors.New("rating not found")
)

const maxReviewLength = 2000

type SubmitParams struct {
	RecipeID   string
	UserID     string
	Rating     int
	ReviewText string
}

// Summary is a recipe's denormalized rating figures.
type Summary struct {
	RecipeID      string  `json:"recipe_id"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

type SubmitResult struct {
	Rating  db.RecipeRating
	Summary Summary
}

type Aggregator struct {
	store  *storage.Storage
	cache  SummaryCache
	events events.Publisher
}

func NewAggregator(store *storage.Storage, cache SummaryCache, publisher events.Publisher) *Aggregator {
	if cache == nil {
		cache = noopCache{}
	}
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &Aggregator{store: store, cache: cache, events: publisher}
}

// SubmitRating records a user's rating, replacing any earlier one for the same
// recipe, and recomputes the recipe's summary over every stored rating.
// An edited rating goes back into moderation.
func (a *Aggregator) SubmitRating(ctx context.Context, p SubmitParams) (*SubmitResult, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}
	review := strings.TrimSpace(p.ReviewText)
	if len([]rune(review)) > maxReviewLength {
		review = string([]rune(review)[:maxReviewLength])
	}

	var result SubmitResult
	err := a.store.InTx(ctx, func(q *db.Queries) error {
		if _, err := q.GetRecipe(ctx, p.RecipeID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe: %w", err)
		}

		rating, err := q.UpsertRecipeRating(ctx, db.UpsertRecipeRatingParams{
			ID:         ulid.Make().String(),
			RecipeID:   p.RecipeID,
			UserID:     p.UserID,
			Rating:     int64(p.Rating),
			ReviewText: sql.NullString{String: review, Valid: review != ""},
		})
		if err != nil {
			return fmt.Errorf("failed to save rating: %w", err)
		}

		summary, err := recompute(ctx, q, p.RecipeID)
		if err != nil {
			return err
		}

		result = SubmitResult{Rating: rating, Summary: summary}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := a.cache.Set(ctx, result.Summary); err != nil {
		slog.Warn("failed to cache rating summary", "error", err, "recipe_id", p.RecipeID)
	}

	e := events.New(events.RatingSubmitted, p.RecipeID, map[string]any{
		"rating_id":      result.Rating.ID,
		"user_id":        p.UserID,
		"rating":         p.Rating,
		"average_rating": result.Summary.AverageRating,
		"rating_count":   result.Summary.RatingCount,
	})
	if err := a.events.Publish(ctx, e); err != nil {
		slog.Error("failed to publish rating event", "error", err, "recipe_id", p.RecipeID)
	}

	slog.Info("recipe rated",
		"recipe_id", p.RecipeID,
		"user_id", p.UserID,
		"rating", p.Rating,
		"average_rating", result.Summary.AverageRating,
		"rating_count", result.Summary.RatingCount)

	return &result, nil
}

func recompute(ctx context.Context, q *db.Queries, recipeID string) (Summary, error) {
	stats, err := q.GetRecipeRatingStats(ctx, recipeID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute rating stats: %w", err)
	}
	summary := Summary{
		RecipeID:      recipeID,
		AverageRating: averageRating(stats.RatingSum, stats.RatingCount),
		RatingCount:   stats.RatingCount,
	}
	if err := q.UpdateRecipeRatingSummary(ctx, db.UpdateRecipeRatingSummaryParams{
		AverageRating: summary.AverageRating,
		RatingCount:   summary.RatingCount,
		ID:            recipeID,
	}); err != nil {
		return Summary{}, fmt.Errorf("failed to update recipe rating summary: %w", err)
	}
	return summary, nil
}

// averageRating is sum/count rounded half up to one decimal, computed in integers
// so ties like 4.15 never round down.
func averageRating(sum, count int64) float64 {
	if count <= 0 {
		return 0
	}
	tenths := (sum*20 + count) / (2 * count)
	return float64(tenths) / 10
}

// Summary returns the cached summary, falling back to the recipe row.
func (a *Aggregator) Summary(ctx context.Context, recipeID string) (Summary, error) {
	if s, ok, err := a.cache.Get(ctx, recipeID); err != nil {
		slog.Warn("rating cache unavailable", "error", err, "recipe_id", recipeID)
	} else if ok {
		return s, nil
	}

	recipe, err := a.store.Queries.GetRecipe(ctx, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, ErrRecipeNotFound
	}
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	s := Summary{RecipeID: recipe.ID, AverageRating: recipe.AverageRating, RatingCount: recipe.RatingCount}
	if err := a.cache.Set(ctx, s); err != nil {
		slog.Warn("failed to cache rating summary", "error", err, "recipe_id", recipeID)
	}
	return s, nil
}

// ApprovedRatings lists the ratings visible to the public, newest first.
func (a *Aggregator) ApprovedRatings(ctx context.Context, recipeID string) ([]db.ListApprovedRatingsRow, error) {
	rows, err := a.store.Queries.ListApprovedRatings(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	if rows == nil {
		rows = []db.ListApprovedRatingsRow{}
	}
	return rows, nil
}

// ModerationQueue lists ratings by approval state, oldest first.
func (a *Aggregator) ModerationQueue(ctx context.Context, approved bool, limit int64) ([]db.ListRatingsByApprovalRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := a.store.Queries.ListRatingsByApproval(ctx, db.ListRatingsByApprovalParams{IsApproved: approved, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return rows, nil
}

// SetApproval publishes or hides a rating. The recipe average is unchanged
// because it already counts unapproved ratings.
func (a *Aggregator) SetApproval(ctx context.Context, ratingID string, approved bool) (*db.RecipeRating, error) {
	rating, err := a.store.Queries.SetRatingApproval(ctx, db.SetRatingApprovalParams{IsApproved: approved, ID: ratingID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	slog.Info("rating moderated", "rating_id", ratingID, "recipe_id", rating.RecipeID, "approved", approved)
	return &rating, nil
}
