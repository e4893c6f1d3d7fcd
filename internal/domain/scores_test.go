package domain

import "testing"

func TestScoreSetTotal(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreSet
		want   float64
	}{
		{
			name:   "whole number average",
			scores: ScoreSet{Logic: 80, Appeal: 75, Focus: 70, Simplicity: 90, Popularity: 60},
			want:   75.0,
		},
		{
			name:   "rounds to one decimal",
			scores: ScoreSet{Logic: 81, Appeal: 75, Focus: 70, Simplicity: 90, Popularity: 60},
			want:   75.2,
		},
		{
			name:   "rounds half up",
			scores: ScoreSet{Logic: 1, Appeal: 1, Focus: 1, Simplicity: 1, Popularity: 3},
			want:   1.4,
		},
		{
			name:   "all minimum",
			scores: ScoreSet{Logic: 1, Appeal: 1, Focus: 1, Simplicity: 1, Popularity: 1},
			want:   1.0,
		},
		{
			name:   "all maximum",
			scores: ScoreSet{Logic: 100, Appeal: 100, Focus: 100, Simplicity: 100, Popularity: 100},
			want:   100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}
