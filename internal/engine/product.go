package engine

// Product is a bank product that can be recommended to a customer.
type Product string

const (
	ProductTravelCard          Product = "travel card"
	ProductCashbackCard        Product = "cashback card"
	ProductEducationLoan       Product = "education loan"
	ProductOverdraftProtection Product = "overdraft protection"
	ProductSIPInvestment       Product = "SIP investment"
	ProductBasicSavings        Product = "basic savings account"
	ProductRecurringDeposit    Product = "recurring deposit"
)

// personaProducts maps each persona to its default product. Fixed policy
// data, never mutated at runtime.
var personaProducts = map[Persona]Product{
	PersonaSpender:         ProductCashbackCard,
	PersonaStudent:         ProductEducationLoan,
	PersonaCreditDependent: ProductOverdraftProtection,
	PersonaSaver:           ProductSIPInvestment,
	PersonaGeneral:         ProductBasicSavings,
}

// RecommendProduct picks a candidate product for (persona, life event).
// The frequent-traveler life event overrides the persona mapping; an
// unmapped persona falls back to the basic savings account. The result is a
// candidate only and is always subject to guardrail review.
func RecommendProduct(persona Persona, event LifeEvent) Product {
	if event == LifeEventFrequentTraveler {
		return ProductTravelCard
	}
	if product, ok := personaProducts[persona]; ok {
		return product
	}
	return ProductBasicSavings
}
