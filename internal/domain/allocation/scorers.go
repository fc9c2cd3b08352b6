package allocation

import "fmt"

// ScoreAvailability turns current utilization into a banded availability
// score. Lower utilization scores higher; a step function, no interpolation.
func ScoreAvailability(m Member) ScoreFactor {
	util := m.UtilizationPct

	points := 0.0
	switch {
	case util < 60:
		points = 30
	case util < 80:
		points = 20
	case util < 95:
		points = 10
	}

	return ScoreFactor{
		Factor: factorAvailability,
		Points: points,
		Reason: fmt.Sprintf("current utilization %.0f%%", util),
	}
}

// ScoreCapacity checks whether the member's remaining weekly hours cover the
// item's estimated effort.
func ScoreCapacity(m Member, item WorkItem) ScoreFactor {
	if item.EstimatedHours == nil || *item.EstimatedHours == 0 {
		return ScoreFactor{Factor: factorCapacity, Points: 10, Reason: "effort not estimated"}
	}

	est := resolveEstimatedHours(item)
	remaining := resolveWeeklyCapacity(m) - m.AllocatedHours

	switch {
	case remaining >= est:
		return ScoreFactor{
			Factor: factorCapacity,
			Points: 20,
			Reason: fmt.Sprintf("sufficient capacity (%.1fh remaining for %.1fh estimate)", remaining, est),
		}
	case remaining >= est/2:
		return ScoreFactor{
			Factor: factorCapacity,
			Points: 10,
			Reason: fmt.Sprintf("partial capacity (%.1fh remaining for %.1fh estimate)", remaining, est),
		}
	default:
		return ScoreFactor{
			Factor: factorCapacity,
			Points: 0,
			Reason: fmt.Sprintf("insufficient capacity (%.1fh remaining for %.1fh estimate)", remaining, est),
		}
	}
}

// ScorePerformance scores historical on-time delivery.
func ScorePerformance(m Member) ScoreFactor {
	rate := resolveOnTimeRate(m)

	points := 2.0
	switch {
	case rate >= 90:
		points = 10
	case rate >= 80:
		points = 7
	case rate >= 70:
		points = 5
	}

	return ScoreFactor{
		Factor: factorPerformance,
		Points: points,
		Reason: fmt.Sprintf("on-time delivery rate %.0f%%", rate),
	}
}
