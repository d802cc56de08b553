package domain

import (
	"errors"
	"fmt"

	"github.com/fionaabad/AniMatch/recommender"
)

var (
	// ErrNotTrained reports that no model pointer exists yet, or that the
	// artifact it names is gone. Retryable after a successful train.
	ErrNotTrained = errors.New("model not trained")

	// ErrTrainingInProgress rejects a retrain while another run is active.
	ErrTrainingInProgress = errors.New("training already in progress")
)

// ProfileError flags caller input that cannot be scored: a rating outside
// [1,10], a name that matches nothing, or a profile left empty after
// resolution. Key identifies the offending profile entry when there is one.
type ProfileError struct {
	Key    string
	Reason string
}

func (e *ProfileError) Error() string {
	if e.Key == "" {
		return "invalid profile: " + e.Reason
	}
	return fmt.Sprintf("invalid profile entry %q: %s", e.Key, e.Reason)
}

// AmbiguityError is not a failure: a profile key or query matched several
// catalog names and the caller must disambiguate and retry.
type AmbiguityError struct {
	Key        string
	Candidates []recommender.Candidate
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous name %q: %d candidates", e.Key, len(e.Candidates))
}
