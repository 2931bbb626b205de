package domain

import "math"

// Recommendation strings attached to weekly assessments. The threshold and
// wording are part of the API contract.
const (
	RecommendPsychLow    = "Reduce your load: ease off schoolwork pressure and try regular exercise with mindfulness practice."
	RecommendPsychOK     = "Keep up your current habits and continue tracking your mood."
	RecommendPhysicalLow = "Focus on low-intensity cardio and basic strength work, increasing training volume gradually."
	RecommendPhysicalOK  = "Raise intensity step by step, paying attention to recovery and stretching."
)

// Scores below this threshold trigger the "reduce load" recommendations.
const recommendThreshold = 6

// PsychRatings are the raw 1-10 answers of a weekly psychological
// self-assessment. Higher stress/anxiety means a worse state; higher
// sleep/support means a better one.
type PsychRatings struct {
	Stress  int
	Anxiety int
	Sleep   int
	Support int
}

// PhysicalRatings are the raw 1-10 answers of a weekly physical
// self-assessment. Higher is better for all four.
type PhysicalRatings struct {
	Cardio      int
	Strength    int
	Flexibility int
	Endurance   int
}

// Score is an aggregate assessment result on a 1-10 "higher is better" scale.
type Score struct {
	Overall        int
	Recommendation string
}

// ScorePsych aggregates psychological ratings. Stress and anxiety are
// inverted (11-x) so the aggregate scale is uniformly "higher is better";
// the mean is rounded, not truncated.
func ScorePsych(r PsychRatings) Score {
	overall := int(math.Round((float64(r.Sleep) + (11 - float64(r.Stress)) + (11 - float64(r.Anxiety)) + float64(r.Support)) / 4))
	rec := RecommendPsychOK
	if overall < recommendThreshold {
		rec = RecommendPsychLow
	}
	return Score{Overall: overall, Recommendation: rec}
}

// ScorePhysical aggregates physical ratings as a rounded mean of the four.
func ScorePhysical(r PhysicalRatings) Score {
	overall := int(math.Round((float64(r.Cardio) + float64(r.Strength) + float64(r.Flexibility) + float64(r.Endurance)) / 4))
	rec := RecommendPhysicalOK
	if overall < recommendThreshold {
		rec = RecommendPhysicalLow
	}
	return Score{Overall: overall, Recommendation: rec}
}
