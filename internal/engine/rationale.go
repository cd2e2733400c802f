package engine

import (
	"fmt"
	"strings"
)

type rationaleClause struct {
	applies func(Profile) bool
	text    func(Profile) string
}

// rationaleClauses are appended in this fixed order whenever the
// corresponding profile signal is present.
var rationaleClauses = []rationaleClause{
	{
		applies: func(p Profile) bool { return p.FoodCount > foodHighCount },
		text:    func(p Profile) string { return fmt.Sprintf("frequent food transactions (%d times)", p.FoodCount) },
	},
	{
		applies: func(p Profile) bool { return p.IsTraveler },
		text:    func(p Profile) string { return fmt.Sprintf("travel spending detected (%d trips)", p.TravelCount) },
	},
	{
		applies: func(p Profile) bool { return p.EducationCount >= 2 },
		text:    func(p Profile) string { return fmt.Sprintf("education payments found (%d times)", p.EducationCount) },
	},
	{
		applies: func(p Profile) bool { return p.LowBalance },
		text:    func(p Profile) string { return "low balance detected" },
	},
	{
		applies: func(p Profile) bool { return p.SalaryDetected },
		text:    func(p Profile) string { return "regular salary income confirmed" },
	},
	{
		applies: func(p Profile) bool { return p.ShoppingCount > 5 },
		text:    func(p Profile) string { return fmt.Sprintf("high shopping activity (%d transactions)", p.ShoppingCount) },
	},
	{
		applies: func(p Profile) bool { return p.RentCount >= 2 },
		text:    func(p Profile) string { return fmt.Sprintf("regular rent payments (%d times)", p.RentCount) },
	},
}

// ComposeRationale builds the human-readable explanation surfaced to the
// analyst. Pure string formatting, no external call.
func ComposeRationale(p Profile, persona Persona) string {
	var parts []string
	for _, clause := range rationaleClauses {
		if clause.applies(p) {
			parts = append(parts, clause.text(p))
		}
	}
	reason := "general spending pattern observed"
	if len(parts) > 0 {
		reason = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("User identified as %s due to: %s.", persona, reason)
}

// FallbackMessage is the deterministic customer message used when the
// external text-generation call fails or times out.
func FallbackMessage(product Product) string {
	return fmt.Sprintf("Based on your profile, we recommend our %s — perfectly suited for your lifestyle.", product)
}
