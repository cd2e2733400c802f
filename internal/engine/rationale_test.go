package engine

import "testing"

func TestComposeRationale(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		persona Persona
		want    string
	}{
		{
			name:    "no signals falls back to general pattern",
			profile: Profile{},
			persona: PersonaGeneral,
			want:    "User identified as general due to: general spending pattern observed.",
		},
		{
			name:    "single clause",
			profile: Profile{SalaryDetected: true},
			persona: PersonaSaver,
			want:    "User identified as saver due to: regular salary income confirmed.",
		},
		{
			name: "clauses join in fixed order",
			profile: Profile{
				FoodCount:      7,
				IsTraveler:     true,
				TravelCount:    4,
				LowBalance:     true,
				SalaryDetected: true,
			},
			persona: PersonaSpender,
			want: "User identified as spender due to: frequent food transactions (7 times), " +
				"travel spending detected (4 trips), low balance detected, regular salary income confirmed.",
		},
		{
			name: "education shopping and rent clauses",
			profile: Profile{
				EducationCount: 3,
				ShoppingCount:  6,
				RentCount:      2,
			},
			persona: PersonaStudent,
			want: "User identified as student due to: education payments found (3 times), " +
				"high shopping activity (6 transactions), regular rent payments (2 times).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeRationale(tt.profile, tt.persona); got != tt.want {
				t.Errorf("ComposeRationale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackMessage(t *testing.T) {
	got := FallbackMessage(ProductTravelCard)
	want := "Based on your profile, we recommend our travel card — perfectly suited for your lifestyle."
	if got != want {
		t.Errorf("FallbackMessage() = %q, want %q", got, want)
	}
}
