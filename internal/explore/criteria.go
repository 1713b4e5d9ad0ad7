// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"fmt"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// Input is unvalidated user input for one search. Zero years mean "use the
// configured default".
type Input struct {
	Keyword     string
	Type        string
	Nationality string
	YearMin     int
	YearMax     int
}

// BuildCriteria validates in against the configured defaults and year
// bounds and returns the criteria for a run.
func BuildCriteria(in Input, d types.DefaultsConfig) (types.SearchCriteria, error) {
	objectType, err := types.ParseObjectType(in.Type)
	if err != nil {
		return types.SearchCriteria{}, err
	}

	yearMin, yearMax := in.YearMin, in.YearMax
	if yearMin == 0 {
		yearMin = d.YearMin
	}
	if yearMax == 0 {
		yearMax = d.YearMax
	}
	if d.YearLowerBound != 0 && yearMin < d.YearLowerBound {
		return types.SearchCriteria{}, fmt.Errorf("year %d must be >= %d", yearMin, d.YearLowerBound)
	}
	if d.YearUpperBound != 0 && yearMax > d.YearUpperBound {
		return types.SearchCriteria{}, fmt.Errorf("year %d must be <= %d", yearMax, d.YearUpperBound)
	}

	return types.NewSearchCriteria(in.Keyword, objectType, in.Nationality, yearMin, yearMax)
}
