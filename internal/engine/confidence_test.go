package engine

import "testing"

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		persona Persona
		event   LifeEvent
		want    int
	}{
		{
			name:    "empty profile scores zero",
			profile: Profile{},
			persona: PersonaGeneral,
			event:   LifeEventUnknown,
			want:    0,
		},
		{
			name:    "shopping spender with unknown life event",
			profile: Profile{ShoppingCount: 6},
			persona: PersonaSpender,
			event:   LifeEventUnknown,
			want:    25, // 15 shopping + 10 persona
		},
		{
			name:    "moderate food adds 20",
			profile: Profile{FoodCount: 6},
			persona: PersonaSpender,
			event:   LifeEventUnknown,
			want:    30, // 20 food + 10 persona
		},
		{
			name:    "heavy food adds 40, not cumulative with moderate",
			profile: Profile{FoodCount: 11},
			persona: PersonaSpender,
			event:   LifeEventUnknown,
			want:    50, // 40 food + 10 persona
		},
		{
			name:    "salary and life event",
			profile: Profile{SalaryDetected: true},
			persona: PersonaSaver,
			event:   LifeEventEmployed,
			want:    60, // 30 salary + 20 life event + 10 persona
		},
		{
			name: "everything clamps at 100",
			profile: Profile{
				SalaryDetected: true,
				FoodCount:      11,
				IsTraveler:     true,
				EducationCount: 2,
				RentCount:      2,
				ShoppingCount:  6,
			},
			persona: PersonaSpender,
			event:   LifeEventHigherEducation,
			want:    100, // raw 30+40+20+30+20+15+20+10 = 185
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceScore(tt.profile, tt.persona, tt.event)
			if got != tt.want {
				t.Errorf("ConfidenceScore() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0,100]", got)
			}
		})
	}
}
