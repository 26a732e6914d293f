package directory

import (
	"strings"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"golang.org/x/text/cases"
)

// FilterDesigners returns the designers matching filters, in collection
// order. A designer matches the search term when its name, specialty or
// location contains it ignoring case; the specialty must match exactly
// unless it is one of the "all" sentinels.
func FilterDesigners(designers []model.Designer, filters model.SearchFilters) []model.Designer {
	fold := cases.Fold()
	term := fold.String(filters.SearchTerm)
	anySpecialty := constant.IsAllSpecialties(filters.SelectedSpecialty)

	out := make([]model.Designer, 0, len(designers))
	for _, d := range designers {
		if term != "" &&
			!strings.Contains(fold.String(d.Name), term) &&
			!strings.Contains(fold.String(d.Specialty), term) &&
			!strings.Contains(fold.String(d.Location), term) {
			continue
		}
		if !anySpecialty && d.Specialty != filters.SelectedSpecialty {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DefaultFilters are the criteria in effect after Initialize.
func DefaultFilters() model.SearchFilters {
	return model.SearchFilters{SelectedSpecialty: constant.SpecialtyAllLabel}
}
