package service

import (
	"strings"
	"testing"

	"github.com/mindfit/wellness-api/internal/core/ports"
)

func TestFallbackAdvice_NeverEmpty(t *testing.T) {
	queries := []string{
		"",
		"I feel anxious about my exams",
		"I can't sleep at night",
		"I had a fight with my friends",
		"how do I get stronger",
	}
	for _, q := range queries {
		if got := FallbackAdvice(q); strings.TrimSpace(got) == "" {
			t.Fatalf("empty advice for query %q", q)
		}
	}
}

func TestFallbackAdvice_KeywordRouting(t *testing.T) {
	cases := []struct {
		query string
		pool  []string
	}{
		{"I'm so ANXIOUS lately", anxietyResponses},
		{"stressed about school", anxietyResponses},
		{"insomnia is ruining my week", sleepResponses},
		{"always tired in the morning", sleepResponses},
		{"feeling lonely without my friends", relationshipResponses},
		{"what should I eat", genericResponses},
	}
	for _, tc := range cases {
		got := FallbackAdvice(tc.query)
		if !containsString(tc.pool, got) {
			t.Fatalf("query %q routed outside its pool: %q", tc.query, got)
		}
	}
}

func containsString(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}

func TestBuildPlanPreview(t *testing.T) {
	preview := BuildPlanPreview(nil)
	if preview.Weeks != 4 || len(preview.Schedule) != 4 {
		t.Fatalf("expected a four-week schedule, got weeks=%d schedule=%d", preview.Weeks, len(preview.Schedule))
	}
	if preview.CaloriesTarget != 1500 {
		t.Fatalf("unexpected calories target: %d", preview.CaloriesTarget)
	}

	week := preview.Schedule[0]
	if len(week.Sessions) != 3 {
		t.Fatalf("expected three sessions per week, got %d", len(week.Sessions))
	}
	if week.Sessions[0].Day != "Mon" || week.Sessions[0].Type != "cardio" || week.Sessions[0].Minutes != 30 {
		t.Fatalf("unexpected Monday session: %+v", week.Sessions[0])
	}
	if week.Sessions[1].Type != "strength" || week.Sessions[1].Intensity != "medium" {
		t.Fatalf("unexpected Wednesday session: %+v", week.Sessions[1])
	}

	total := 0
	for _, m := range preview.Mix {
		total += m.Value
	}
	if total != 100 {
		t.Fatalf("mix slices must sum to 100, got %d", total)
	}
}

func TestBuildPlanPreview_AgeHint(t *testing.T) {
	age := 16
	preview := BuildPlanPreview(&ports.ProfileHints{Age: &age})
	if !strings.Contains(preview.Summary, "16-year-old") {
		t.Fatalf("summary must mention the hinted age: %q", preview.Summary)
	}
}
