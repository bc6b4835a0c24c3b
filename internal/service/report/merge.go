package report

// aggregate is the ephemeral working record every report dataset is built
// from. It lives for one report invocation only. Hours and AbsenceHours
// are the merge-summed fields; the rest identify the record.
type aggregate struct {
	Employee     string
	Number       string
	Department   string
	Position     string
	Project      string
	StaffUnits   float64
	Hours        float64
	AbsenceHours float64
}

// mergeKey identifies an aggregate for merge purposes: the employment
// number, plus the project when merging at project granularity.
type mergeKey struct {
	Number  string
	Project string
}

func (r aggregate) key(byProject bool) mergeKey {
	key := mergeKey{Number: r.Number}
	if byProject {
		key.Project = r.Project
	}
	return key
}

// mergeRecords merges addition into base. The numeric fields of every
// addition record are scaled by factor first; records matching an existing
// key are summed into it, the rest are appended in order. Both inputs stay
// untouched, so callers can feed a previous result back in as new input.
func mergeRecords(base, addition []aggregate, byProject bool, factor float64) []aggregate {
	merged := make([]aggregate, len(base))
	copy(merged, base)

	index := make(map[mergeKey]int, len(merged))
	for i, rec := range merged {
		index[rec.key(byProject)] = i
	}

	for _, rec := range addition {
		rec.Hours *= factor
		rec.AbsenceHours *= factor

		if i, ok := index[rec.key(byProject)]; ok {
			merged[i].Hours += rec.Hours
			merged[i].AbsenceHours += rec.AbsenceHours
			continue
		}

		index[rec.key(byProject)] = len(merged)
		merged = append(merged, rec)
	}

	return merged
}

// foldByNumber collapses records sharing an employment number into one,
// summing their hour fields. Order of first appearance is preserved.
func foldByNumber(records []aggregate) []aggregate {
	return mergeRecords(nil, records, false, 1)
}
