package window

import (
	"fmt"

	"github.com/pkg/errors"
)

// SubjectsPerSex is the number of temperature columns recorded per sex in
// the source table (fem_temp_1..13, male_temp_1..13).
const SubjectsPerSex = 13

// Cohort selects which sensor columns participate in the mean-of-means.
type Cohort int

const (
	CohortFemale Cohort = iota
	CohortMale
	CohortBoth
)

func ParseCohort(s string) (Cohort, error) {
	switch s {
	case "female", "fem", "f":
		return CohortFemale, nil
	case "male", "m":
		return CohortMale, nil
	case "both", "all", "":
		return CohortBoth, nil
	default:
		return 0, errors.Errorf("unknown cohort: %s", s)
	}
}

func (c Cohort) String() string {
	switch c {
	case CohortFemale:
		return "female"
	case CohortMale:
		return "male"
	case CohortBoth:
		return "both"
	default:
		return fmt.Sprintf("cohort(%d)", int(c))
	}
}

func sexColumns(prefix string) []string {
	result := make([]string, SubjectsPerSex)
	for i := range result {
		result[i] = fmt.Sprintf("%s_%d", prefix, i+1)
	}
	return result
}

// Columns returns the column names selected by the cohort. CohortBoth
// concatenates both sets into one mean-of-means, not an average of the two
// cohort means.
func (c Cohort) Columns() []string {
	switch c {
	case CohortFemale:
		return sexColumns("fem_temp")
	case CohortMale:
		return sexColumns("male_temp")
	case CohortBoth:
		return append(sexColumns("fem_temp"), sexColumns("male_temp")...)
	default:
		return nil
	}
}
