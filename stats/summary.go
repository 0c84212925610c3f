package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Summary is the aggregate result of a run, detached from its samples.
type Summary struct {
	GridSize     int
	Trials       int
	Mean         float64
	StdDev       float64
	ConfidenceLo float64
	ConfidenceHi float64
}

// String renders the summary on one line, e.g.
//
//	200×200 grid (40,000 sites), 100 trials: mean = 0.592…, stddev = 0.009…, 95% CI = [0.590…, 0.594…]
func (s Summary) String() string {
	return fmt.Sprintf("%d×%d grid (%s sites), %s trials: mean = %.6f, stddev = %.6f, 95%% CI = [%.6f, %.6f]",
		s.GridSize, s.GridSize,
		humanize.Comma(int64(s.GridSize)*int64(s.GridSize)),
		humanize.Comma(int64(s.Trials)),
		s.Mean, s.StdDev, s.ConfidenceLo, s.ConfidenceHi,
	)
}
