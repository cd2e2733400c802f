package engine

// ConfidenceScore computes an additive heuristic signal in [0,100] for how
// strongly the profile supports the classification. All terms are
// non-negative so only the upper bound needs clamping. This is not a
// calibrated probability.
func ConfidenceScore(p Profile, persona Persona, event LifeEvent) int {
	score := 0
	if p.SalaryDetected {
		score += 30
	}
	if p.FoodCount > 10 {
		score += 40
	} else if p.FoodCount > 5 {
		score += 20
	}
	if p.IsTraveler {
		score += 20
	}
	if p.EducationCount >= 2 {
		score += 30
	}
	if p.RentCount >= 2 {
		score += 20
	}
	if p.ShoppingCount > 5 {
		score += 15
	}
	if event != LifeEventUnknown {
		score += 20
	}
	if persona != PersonaGeneral {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}
