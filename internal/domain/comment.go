package domain

import (
	"encoding/json"
	"fmt"
)

// Cohort axes: 5 age brackets x 2 genders = 10 cohorts per analysis.
var (
	CommentAges    = []int{10, 20, 30, 40, 50}
	CommentGenders = []string{"male", "female"}
)

const (
	// CommentsPerCohort comments are generated for each (age, gender) pair.
	CommentsPerCohort = 5
	// RepresentativeCount summary comments digest the pooled 50.
	RepresentativeCount = 5
	// RepresentativeKey is the bundle key holding the summary comments.
	RepresentativeKey = "대표 댓글"
)

// CohortKey renders an age bracket as its bundle key ("10대", "20대", ...).
func CohortKey(age int) string {
	return fmt.Sprintf("%d대", age)
}

// CohortComments holds one cohort key's comments, split by gender.
type CohortComments struct {
	Male   []string `json:"male"`
	Female []string `json:"female"`
}

// CommentBundle is the full simulated-reader reaction for one analysis:
// 10 cohorts of 5 comments each, plus 5 representative comments. Built once,
// never mutated after assembly, discarded as a unit on any failure.
type CommentBundle struct {
	Cohorts        map[string]CohortComments
	Representative []string
}

// MarshalJSON flattens the bundle into the persisted shape:
// {"10대": {"male": [...], "female": [...]}, ..., "대표 댓글": [...]}.
func (b *CommentBundle) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Cohorts)+1)
	for key, cohort := range b.Cohorts {
		out[key] = cohort
	}
	out[RepresentativeKey] = b.Representative
	return json.Marshal(out)
}

func (b *CommentBundle) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Cohorts = make(map[string]CohortComments, len(raw))
	for key, value := range raw {
		if key == RepresentativeKey {
			if err := json.Unmarshal(value, &b.Representative); err != nil {
				return fmt.Errorf("representative comments: %w", err)
			}
			continue
		}
		var cohort CohortComments
		if err := json.Unmarshal(value, &cohort); err != nil {
			return fmt.Errorf("cohort %s: %w", key, err)
		}
		b.Cohorts[key] = cohort
	}
	return nil
}
