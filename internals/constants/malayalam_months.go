package constants

// Malayalam (Kollavarsham) month names in calendar order, Chingam first.
var MalayalamMonths = []string{
	"Chingam",
	"Kanni",
	"Thulam",
	"Vrischikam",
	"Dhanu",
	"Makaram",
	"Kumbham",
	"Meenam",
	"Medam",
	"Edavam",
	"Mithunam",
	"Karkidakam",
}

var malayalamMonthSet map[string]struct{}

func init() {
	malayalamMonthSet = make(map[string]struct{}, len(MalayalamMonths))
	for _, m := range MalayalamMonths {
		malayalamMonthSet[m] = struct{}{}
	}
}

// IsValidMalayalamMonth reports whether name is a Malayalam month name.
func IsValidMalayalamMonth(name string) bool {
	_, ok := malayalamMonthSet[name]
	return ok
}
