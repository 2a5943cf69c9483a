package constants

// Closed selection lists for the visit form. "Autre" is the escape hatch on
// each of them.
var (
	// ProdList are the products a farm can be interested in (multi-select).
	ProdList = []string{"M²erlin", "Barn-E", "Nano", "Moov", "Racleur", "Autre"}

	// EqtList are the milking parlour types.
	EqtList = []string{"SBS", "HB", "Rotary", "Robot", "Autre"}

	// BrandList are the current-equipment manufacturers.
	BrandList = []string{"Boumatic", "Delaval", "Fullwood", "Gascoigne-Melotte", "GEA", "Lely", "Manus", "Surge", "Autre"}
)

// InList reports membership in one of the closed lists.
func InList(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
