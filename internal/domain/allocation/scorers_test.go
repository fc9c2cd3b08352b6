package allocation

import (
	"testing"

	"github.com/google/uuid"
)

func TestScoreAvailability_Bands(t *testing.T) {
	cases := []struct {
		util float64
		want float64
	}{
		{0, 30},
		{59.9, 30},
		{60, 20},
		{79.9, 20},
		{80, 10},
		{94.9, 10},
		{95, 0},
		{100, 0},
	}

	for _, tc := range cases {
		f := ScoreAvailability(testMember(tc.util))
		if f.Points != tc.want {
			t.Fatalf("utilization %v: expected %v, got %v", tc.util, tc.want, f.Points)
		}
	}
}

func TestScoreCapacity_UnspecifiedEffort(t *testing.T) {
	m := testMember(50)
	m.WeeklyCapacityHours = fptr(40)

	f := ScoreCapacity(m, WorkItem{ID: uuid.New()})
	if f.Points != 10 {
		t.Fatalf("expected flat 10 for unestimated effort, got %v", f.Points)
	}

	zero := 0.0
	f = ScoreCapacity(m, WorkItem{ID: uuid.New(), EstimatedHours: &zero})
	if f.Points != 10 {
		t.Fatalf("expected flat 10 for zero estimate, got %v", f.Points)
	}
}

func TestScoreCapacity_Bands(t *testing.T) {
	cases := []struct {
		capacity  float64
		allocated float64
		estimated float64
		want      float64
	}{
		{40, 10, 8, 20},  // remaining 30 >= 8
		{40, 36, 8, 10},  // remaining 4 >= 4
		{40, 39, 8, 0},   // remaining 1 < 4
		{40, 45, 8, 0},   // negative remaining
	}

	for _, tc := range cases {
		m := testMember(50)
		m.WeeklyCapacityHours = fptr(tc.capacity)
		m.AllocatedHours = tc.allocated

		f := ScoreCapacity(m, WorkItem{ID: uuid.New(), EstimatedHours: fptr(tc.estimated)})
		if f.Points != tc.want {
			t.Fatalf("capacity %v allocated %v estimate %v: expected %v, got %v",
				tc.capacity, tc.allocated, tc.estimated, tc.want, f.Points)
		}
	}
}

func TestScorePerformance_Bands(t *testing.T) {
	cases := []struct {
		rate float64
		want float64
	}{
		{95, 10},
		{90, 10},
		{89.9, 7},
		{80, 7},
		{79.9, 5},
		{70, 5},
		{69.9, 2},
		{0, 2},
	}

	for _, tc := range cases {
		m := testMember(50)
		m.OnTimeDeliveryRate = fptr(tc.rate)

		f := ScorePerformance(m)
		if f.Points != tc.want {
			t.Fatalf("rate %v: expected %v, got %v", tc.rate, tc.want, f.Points)
		}
	}
}

func TestScorePerformance_DefaultRate(t *testing.T) {
	f := ScorePerformance(testMember(50))
	if f.Points != 7 {
		t.Fatalf("expected 7 for default rate 80, got %v", f.Points)
	}
}
