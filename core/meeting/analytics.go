package meeting

import "sort"

// Analytics is the aggregate view over a filtered meeting set.
type Analytics struct {
	Total      int `json:"total"`
	Productive int `json:"productive"`
	// Efficiency = floor(100 * Productive / Total); 0 when Total is 0.
	Efficiency int `json:"efficiency"`

	// per-department meeting counts, in first-encountered order
	DeptCounts []DeptCount `json:"dept_counts"`
	// per-department absentee token counts, in first-encountered order
	AbsenteeCounts []DeptCount `json:"absentee_counts"`

	// BestAttendance is the department with the fewest absentee tokens;
	// ties break to the first-encountered department after a stable
	// ascending sort. "N/A" when no meetings matched.
	BestAttendance string `json:"best_attendance"`
}

type DeptCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// Analyze computes meeting analytics over the given set.
func Analyze(meetings []Meeting) Analytics {
	an := Analytics{
		Total:          len(meetings),
		BestAttendance: "N/A",
	}

	deptIdx := make(map[string]int)
	absIdx := make(map[string]int)
	for _, m := range meetings {
		if m.Productive == ProductiveYes {
			an.Productive++
		}

		if i, ok := deptIdx[m.Department]; ok {
			an.DeptCounts[i].Count++
		} else {
			deptIdx[m.Department] = len(an.DeptCounts)
			an.DeptCounts = append(an.DeptCounts, DeptCount{Department: m.Department, Count: 1})
		}

		if i, ok := absIdx[m.Department]; ok {
			an.AbsenteeCounts[i].Count += m.AbsenteeCount()
		} else {
			absIdx[m.Department] = len(an.AbsenteeCounts)
			an.AbsenteeCounts = append(an.AbsenteeCounts, DeptCount{Department: m.Department, Count: m.AbsenteeCount()})
		}
	}

	if an.Total > 0 {
		an.Efficiency = (an.Productive * 100) / an.Total
	}

	if len(an.AbsenteeCounts) > 0 {
		sorted := make([]DeptCount, len(an.AbsenteeCounts))
		copy(sorted, an.AbsenteeCounts)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count < sorted[j].Count })
		an.BestAttendance = sorted[0].Department
	}
	return an
}
