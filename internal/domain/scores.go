package domain

import "github.com/fread-app/fread-server-go/internal/util"

// ScoreSet holds the five quantitative sub-scores, each an integer in
// [1,100]. The aggregate total is always derived from the five fields,
// never stored independently within this type.
type ScoreSet struct {
	Logic      int `json:"logic"`      // 설득력
	Appeal     int `json:"appeal"`     // 전달력
	Focus      int `json:"focus"`      // 몰입도
	Simplicity int `json:"simplicity"` // 문장 간결성
	Popularity int `json:"popularity"` // 대중성
}

// Total is the mean of the five sub-scores, rounded to one decimal place.
func (s ScoreSet) Total() float64 {
	sum := s.Logic + s.Appeal + s.Focus + s.Simplicity + s.Popularity
	return util.Round1(float64(sum) / 5)
}
