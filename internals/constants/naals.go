package constants

// The 27 naals (sidereal lunar mansions) of the Malayalam calendar, in their
// fixed traditional order. Day records and devotee birth stars both use these
// exact labels; order matters for display, never reorder.
var Naals = []string{
	"Ashwathi",
	"Bharani",
	"Karthika",
	"Rohini",
	"Makayiram",
	"Thiruvathira",
	"Punartham",
	"Pooyam",
	"Ayilyam",
	"Makam",
	"Pooram",
	"Uthram",
	"Atham",
	"Chithira",
	"Chothi",
	"Vishakham",
	"Anizham",
	"Thrikketta",
	"Moolam",
	"Pooradam",
	"Uthradam",
	"Thiruvonam",
	"Avittam",
	"Chathayam",
	"Pooruruttathi",
	"Uthrattathi",
	"Revathi",
}

// pre-compute for fast lookup
var naalSet map[string]struct{}

func init() {
	naalSet = make(map[string]struct{}, len(Naals))
	for _, n := range Naals {
		naalSet[n] = struct{}{}
	}
}

// IsValidNaal reports whether label is one of the 27 naal labels (exact match).
func IsValidNaal(label string) bool {
	_, ok := naalSet[label]
	return ok
}
