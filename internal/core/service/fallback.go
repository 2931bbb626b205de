package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mindfit/wellness-api/internal/core/ports"
)

// Canned advice pools keyed on simple keyword matches. Used whenever the
// upstream model is unreachable, misconfigured, or returns an empty body;
// FallbackAdvice never returns an empty string.
var (
	anxietyKeywords      = []string{"anxious", "anxiety", "nervous", "panic", "stress", "stressed", "worried", "worry", "overwhelmed"}
	sleepKeywords        = []string{"sleep", "insomnia", "tired", "exhausted", "awake", "rest"}
	relationshipKeywords = []string{"friend", "friends", "relationship", "lonely", "alone", "family", "parents", "classmates"}

	anxietyResponses = []string{
		"It sounds like you're feeling anxious. Try a slow breathing exercise: inhale for four seconds, hold for four, exhale for four, and repeat a few rounds. A steady daily routine and some light exercise also help take the edge off.",
		"Tension like this is very common and it does pass. Writing down what's worrying you, then picking the one thing you can act on today, often shrinks the rest. Pair it with a short walk or stretch to release the physical side of the stress.",
	}
	sleepResponses = []string{
		"For sleep trouble, keep a fixed bedtime and wake time, put screens away at least half an hour before bed, and keep the room quiet, dark, and cool. A short wind-down ritual like light reading or calm music tells your body it's time to rest.",
		"Poor sleep usually improves with routine: same schedule every day, no caffeine late in the afternoon, and getting daylight in the morning. If your mind races at night, try jotting tomorrow's worries on paper before lights out.",
	}
	relationshipResponses = []string{
		"Feeling disconnected from people is hard. Start small: one honest message to someone you trust, or joining one group activity this week. Consistent small contact rebuilds closeness faster than big gestures.",
		"Relationships take maintenance, and rough patches are normal. Try naming how you feel to the other person without blame, and keep up activities where you meet people naturally, like sports or clubs.",
	}
	genericResponses = []string{
		"Thanks for sharing that. A good starting point is to keep a short daily note of your mood, get some exercise most days, and stay in touch with people you trust. If things stay heavy, talking with a professional counsellor is a sign of strength, not weakness.",
		"I hear you. Try breaking the problem into the smallest next step you can take today, keep your sleep and meals regular, and make room for movement you enjoy. Small consistent habits carry further than willpower.",
		"That sounds like a lot to carry. Be patient with yourself: track how you're feeling, aim for steady routines, and lean on your support network. Concrete small wins each day will slowly shift the bigger picture.",
	}
)

// FallbackAdvice returns locally generated advice text for a query.
func FallbackAdvice(query string) string {
	q := strings.ToLower(query)
	switch {
	case containsAny(q, anxietyKeywords):
		return pick(anxietyResponses)
	case containsAny(q, sleepKeywords):
		return pick(sleepResponses)
	case containsAny(q, relationshipKeywords):
		return pick(relationshipResponses)
	default:
		return pick(genericResponses)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}

// BuildPlanPreview sketches a four-week starter plan from whatever profile
// hints the caller supplied. The preview is never persisted.
func BuildPlanPreview(hints *ports.ProfileHints) *ports.PlanPreview {
	const weeks = 4

	summary := "A four-week foundation plan mixing cardio, strength, and mobility."
	if hints != nil && hints.Age != nil {
		summary = fmt.Sprintf("A four-week foundation plan for a %d-year-old, mixing cardio, strength, and mobility.", *hints.Age)
	}

	schedule := make([]ports.PlanWeek, 0, weeks)
	for week := 1; week <= weeks; week++ {
		schedule = append(schedule, ports.PlanWeek{
			Week: week,
			Sessions: []ports.PlanSession{
				{Day: "Mon", Type: "cardio", Minutes: 30, Intensity: "low"},
				{Day: "Wed", Type: "strength", Minutes: 40, Intensity: "medium"},
				{Day: "Fri", Type: "mobility", Minutes: 20, Intensity: "low"},
			},
		})
	}

	return &ports.PlanPreview{
		Summary:        summary,
		Weeks:          weeks,
		Schedule:       schedule,
		CaloriesTarget: 1500,
		Mix: []ports.MixSlice{
			{Label: "cardio", Value: 45},
			{Label: "strength", Value: 35},
			{Label: "mobility", Value: 20},
		},
	}
}
