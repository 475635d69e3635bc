package models

// Word difficulty levels as stored on the server. New entries always start
// as weak; promotion happens through the learning games, not this client core.
const (
	DifficultyWeak = "weak"
	DifficultyHard = "hard"
)

// WordOptional carries the mutable learning counters of a user word entry.
type WordOptional struct {
	// CountRightAnswersInRow is the current right-answer streak for the word.
	CountRightAnswersInRow int `json:"countRightAnswersInRow"`

	// IsLearned marks the word as learned once the streak threshold is met.
	IsLearned bool `json:"isLearned"`

	// DateAdded is the yyyy-mm-dd day the entry was created.
	DateAdded string `json:"dateAdded,omitempty"`

	// DateLearned is the yyyy-mm-dd day IsLearned flipped to true.
	DateLearned string `json:"dateLearned,omitempty"`
}

// UserWord is one per-(user, word) learning record. Entries are created
// lazily on first interaction with a word, mutated on each answer, and never
// hard-deleted by this client.
type UserWord struct {
	// ID is the server-side entry identifier.
	ID string `json:"id,omitempty"`

	// WordID references the vocabulary item this entry tracks.
	WordID string `json:"wordId,omitempty"`

	Difficulty string       `json:"difficulty"`
	Optional   WordOptional `json:"optional"`
}

// UserWordUpdate is the request body for creating or replacing an entry.
// Only the mutable fields travel: the server owns ID and WordID.
type UserWordUpdate struct {
	Difficulty string       `json:"difficulty"`
	Optional   WordOptional `json:"optional"`
}

// Update projects the entry onto its mutable fields for a PUT request.
func (w UserWord) Update() UserWordUpdate {
	return UserWordUpdate{Difficulty: w.Difficulty, Optional: w.Optional}
}
