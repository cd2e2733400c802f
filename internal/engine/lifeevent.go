package engine

type LifeEvent string

const (
	LifeEventHigherEducation  LifeEvent = "higher_education"
	LifeEventFrequentTraveler LifeEvent = "frequent_traveler"
	LifeEventRenter           LifeEvent = "renter"
	LifeEventEmployed         LifeEvent = "employed"
	LifeEventUnknown          LifeEvent = "unknown"
)

type lifeEventRule struct {
	match func(Profile) bool
	event LifeEvent
}

// lifeEventRules is evaluated in order, first match wins. Education and
// travel signals outrank generic employment; the ordering is policy and
// reordering changes outcomes for overlapping profiles.
var lifeEventRules = []lifeEventRule{
	{func(p Profile) bool { return p.EducationCount >= 2 }, LifeEventHigherEducation},
	{func(p Profile) bool { return p.IsTraveler }, LifeEventFrequentTraveler},
	{func(p Profile) bool { return p.RentCount >= 2 }, LifeEventRenter},
	{func(p Profile) bool { return p.SalaryDetected }, LifeEventEmployed},
}

// DetectLifeEvent maps a behavior profile to one life-event tag.
// Total: every profile reaches exactly one branch, falling back to unknown.
func DetectLifeEvent(p Profile) LifeEvent {
	for _, rule := range lifeEventRules {
		if rule.match(p) {
			return rule.event
		}
	}
	return LifeEventUnknown
}
