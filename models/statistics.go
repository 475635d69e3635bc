package models

// UserStats is the single per-user aggregate statistics record. It is
// created lazily (get-or-create) on first access with zeroed counters.
type UserStats struct {
	// LearnedWords is the total number of words the user has learned.
	LearnedWords int `json:"learnedWords"`

	// Optional holds loosely-structured per-day/per-game counters managed by
	// the learning games. The client core treats it as opaque.
	Optional map[string]any `json:"optional"`
}

// NewUserStats returns a zeroed statistics record as written by the
// get-or-create path on a fresh account.
func NewUserStats() UserStats {
	return UserStats{LearnedWords: 0, Optional: map[string]any{}}
}

// AggregatedWord is one element of an aggregated words query result:
// a vocabulary item with the caller's UserWord entry joined in, if any.
type AggregatedWord struct {
	ID       string    `json:"_id"`
	Word     string    `json:"word,omitempty"`
	UserWord *UserWord `json:"userWord,omitempty"`
}

// TotalCount is the aggregation counter object of an aggregated words page.
type TotalCount struct {
	Count int `json:"count"`
}

// AggregatedWordsPage is one page of the /users/{id}/aggregatedWords
// response. The endpoint returns a single-element array of pages; TotalCount
// is empty when the filter matched nothing.
type AggregatedWordsPage struct {
	PaginatedResults []AggregatedWord `json:"paginatedResults"`
	TotalCount       []TotalCount     `json:"totalCount"`
}
