package constant

const (
	SpecialtyAll      = "all"
	SpecialtyAllLabel = "All Specialties"

	PlaceholderDesignerImage = "https://via.placeholder.com/400x300/f3f4f6/9ca3af?text=Fashion+Designer"

	MinRating = 0
	MaxRating = 5
)

// Specialties offered by the add/edit designer form. Free text is still
// accepted on designer records.
var Specialties = []string{
	"Traditional African Wear",
	"Contemporary Fashion",
	"Bridal & Formal Wear",
	"Men's Fashion",
	"Children's Fashion",
	"Design & Fashion",
}

// IsAllSpecialties reports whether specialty disables specialty filtering.
func IsAllSpecialties(specialty string) bool {
	return specialty == "" || specialty == SpecialtyAll || specialty == SpecialtyAllLabel
}

type DesignerEventType string

const (
	DesignerCreated DesignerEventType = "designer.created"
	DesignerUpdated DesignerEventType = "designer.updated"
	DesignerDeleted DesignerEventType = "designer.deleted"
)
