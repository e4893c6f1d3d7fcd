package domain

import (
	"encoding/json"
	"testing"
)

func fullBundle() *CommentBundle {
	bundle := &CommentBundle{
		Cohorts:        make(map[string]CohortComments, len(CommentAges)),
		Representative: []string{"요약1", "요약2", "요약3", "요약4", "요약5"},
	}
	for _, age := range CommentAges {
		bundle.Cohorts[CohortKey(age)] = CohortComments{
			Male:   []string{"남1", "남2", "남3", "남4", "남5"},
			Female: []string{"여1", "여2", "여3", "여4", "여5"},
		}
	}
	return bundle
}

func TestCommentBundleMarshalShape(t *testing.T) {
	data, err := json.Marshal(fullBundle())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("re-decode error = %v", err)
	}

	// 10대~50대 + 대표 댓글 = 6 keys
	if len(flat) != 6 {
		t.Errorf("len(keys) = %d, want 6", len(flat))
	}
	for _, age := range CommentAges {
		key := CohortKey(age)
		raw, ok := flat[key]
		if !ok {
			t.Fatalf("missing cohort key %q", key)
		}
		var cohort CohortComments
		if err := json.Unmarshal(raw, &cohort); err != nil {
			t.Fatalf("cohort %q decode error = %v", key, err)
		}
		if len(cohort.Male) != CommentsPerCohort || len(cohort.Female) != CommentsPerCohort {
			t.Errorf("cohort %q sizes = %d/%d, want %d each", key, len(cohort.Male), len(cohort.Female), CommentsPerCohort)
		}
	}

	var representative []string
	if err := json.Unmarshal(flat[RepresentativeKey], &representative); err != nil {
		t.Fatalf("representative decode error = %v", err)
	}
	if len(representative) != RepresentativeCount {
		t.Errorf("len(representative) = %d, want %d", len(representative), RepresentativeCount)
	}
}

func TestCommentBundleRoundTrip(t *testing.T) {
	original := fullBundle()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded CommentBundle
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(decoded.Cohorts) != len(original.Cohorts) {
		t.Errorf("cohorts = %d, want %d", len(decoded.Cohorts), len(original.Cohorts))
	}
	if decoded.Cohorts["40대"].Male[0] != "남1" {
		t.Errorf("40대 male[0] = %q, want 남1", decoded.Cohorts["40대"].Male[0])
	}
	if decoded.Representative[4] != "요약5" {
		t.Errorf("representative[4] = %q, want 요약5", decoded.Representative[4])
	}
}

func TestCohortKey(t *testing.T) {
	if got := CohortKey(10); got != "10대" {
		t.Errorf("CohortKey(10) = %q, want 10대", got)
	}
	if got := CohortKey(50); got != "50대" {
		t.Errorf("CohortKey(50) = %q, want 50대", got)
	}
}
