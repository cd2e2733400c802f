package engine

// Persona is a behavioral customer archetype.
type Persona string

const (
	PersonaStudent         Persona = "student"
	PersonaCreditDependent Persona = "credit_dependent"
	PersonaSpender         Persona = "spender"
	PersonaSaver           Persona = "saver"
	PersonaGeneral         Persona = "general"
)

type personaRule struct {
	match   func(Profile, LifeEvent) bool
	persona Persona
}

// personaRules is evaluated in order, first match wins.
var personaRules = []personaRule{
	{func(p Profile, e LifeEvent) bool { return e == LifeEventHigherEducation }, PersonaStudent},
	{func(p Profile, e LifeEvent) bool { return p.LowBalance && p.SalaryDetected }, PersonaCreditDependent},
	{func(p Profile, e LifeEvent) bool { return p.FoodSpending == FoodSpendingHigh || p.IsTraveler }, PersonaSpender},
	{func(p Profile, e LifeEvent) bool { return p.ShoppingCount > 5 }, PersonaSpender},
	{func(p Profile, e LifeEvent) bool { return !p.LowBalance && p.SalaryDetected }, PersonaSaver},
}

// DetectPersona maps (profile, life event) to one persona tag.
// Total: falls back to general when no rule matches.
func DetectPersona(p Profile, event LifeEvent) Persona {
	for _, rule := range personaRules {
		if rule.match(p, event) {
			return rule.persona
		}
	}
	return PersonaGeneral
}
