package domain

import "testing"

func TestScorePsych(t *testing.T) {
	cases := []struct {
		name    string
		ratings PsychRatings
		overall int
		rec     string
	}{
		{
			name:    "worst case",
			ratings: PsychRatings{Stress: 10, Anxiety: 10, Sleep: 1, Support: 1},
			overall: 1,
			rec:     RecommendPsychLow,
		},
		{
			name:    "best case",
			ratings: PsychRatings{Stress: 1, Anxiety: 1, Sleep: 10, Support: 10},
			overall: 10,
			rec:     RecommendPsychOK,
		},
		{
			name:    "midpoint rounds up to threshold",
			ratings: PsychRatings{Stress: 5, Anxiety: 6, Sleep: 6, Support: 5},
			overall: 6,
			rec:     RecommendPsychOK,
		},
		{
			name:    "just below threshold",
			ratings: PsychRatings{Stress: 7, Anxiety: 7, Sleep: 5, Support: 5},
			overall: 5,
			rec:     RecommendPsychLow,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScorePsych(tc.ratings)
			if got.Overall != tc.overall {
				t.Fatalf("overall = %d, want %d", got.Overall, tc.overall)
			}
			if got.Recommendation != tc.rec {
				t.Fatalf("recommendation = %q, want %q", got.Recommendation, tc.rec)
			}
		})
	}
}

func TestScorePhysical(t *testing.T) {
	cases := []struct {
		name    string
		ratings PhysicalRatings
		overall int
		rec     string
	}{
		{
			name:    "all ones",
			ratings: PhysicalRatings{Cardio: 1, Strength: 1, Flexibility: 1, Endurance: 1},
			overall: 1,
			rec:     RecommendPhysicalLow,
		},
		{
			name:    "all tens",
			ratings: PhysicalRatings{Cardio: 10, Strength: 10, Flexibility: 10, Endurance: 10},
			overall: 10,
			rec:     RecommendPhysicalOK,
		},
		{
			name:    "half point rounds up",
			ratings: PhysicalRatings{Cardio: 4, Strength: 5, Flexibility: 6, Endurance: 7},
			overall: 6,
			rec:     RecommendPhysicalOK,
		},
		{
			name:    "below threshold",
			ratings: PhysicalRatings{Cardio: 5, Strength: 5, Flexibility: 5, Endurance: 5},
			overall: 5,
			rec:     RecommendPhysicalLow,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScorePhysical(tc.ratings)
			if got.Overall != tc.overall {
				t.Fatalf("overall = %d, want %d", got.Overall, tc.overall)
			}
			if got.Recommendation != tc.rec {
				t.Fatalf("recommendation = %q, want %q", got.Recommendation, tc.rec)
			}
		})
	}
}
