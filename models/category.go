package models

// ServiceCategories is the fixed list of categories a seller can register
// under. The registration validator rejects anything outside this list.
var ServiceCategories = []string{
	"Plumbing",
	"Electrical",
	"Tutoring",
	"Housekeeping",
	"Carpentry",
	"Cleaning",
	"Gardening",
	"Appliance Repair",
	"Painting",
	"Home Renovation",
	"Pest Control",
	"AC Repair",
}

// IsValidServiceCategory reports whether name is one of the fixed categories.
func IsValidServiceCategory(name string) bool {
	for _, category := range ServiceCategories {
		if category == name {
			return true
		}
	}
	return false
}
