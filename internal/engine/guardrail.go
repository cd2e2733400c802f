package engine

// Verdict is the guardrail's decision for one candidate product.
// Produced once per review and never mutated afterwards.
type Verdict struct {
	Blocked      bool
	Reason       string
	FinalProduct Product
}

// Status reports the verdict in audit-log vocabulary.
func (v Verdict) Status() string {
	if v.Blocked {
		return "blocked"
	}
	return "passed"
}

type guardrailRule struct {
	match      func(Profile, Product) bool
	substitute Product
	reason     string
}

// guardrailRules is evaluated sequentially; every rule tests the original
// candidate and a later match overwrites the substitution and reason of an
// earlier one. Last matching rule wins. Flagged for product-owner review:
// do not change to first-match without confirmation.
var guardrailRules = []guardrailRule{
	{
		match: func(p Profile, candidate Product) bool {
			return p.LowBalance && (candidate == ProductEducationLoan || candidate == ProductOverdraftProtection)
		},
		substitute: ProductBasicSavings,
		reason:     "blocked: low balance — safer product assigned",
	},
	{
		match: func(p Profile, candidate Product) bool {
			return candidate == ProductTravelCard && !p.IsTraveler
		},
		substitute: ProductCashbackCard,
		reason:     "blocked: travel card not suitable — cashback assigned",
	},
	{
		match: func(p Profile, candidate Product) bool {
			return candidate == ProductSIPInvestment && p.LowBalance
		},
		substitute: ProductRecurringDeposit,
		reason:     "blocked: low balance — recurring deposit suggested instead",
	},
}

// ReviewProduct inspects (profile, candidate product) and may veto and
// substitute the product. No rule matching yields a passed verdict with the
// candidate unchanged.
func ReviewProduct(p Profile, candidate Product) Verdict {
	verdict := Verdict{
		Reason:       "all checks passed",
		FinalProduct: candidate,
	}
	for _, rule := range guardrailRules {
		if rule.match(p, candidate) {
			verdict.Blocked = true
			verdict.FinalProduct = rule.substitute
			verdict.Reason = rule.reason
		}
	}
	return verdict
}
