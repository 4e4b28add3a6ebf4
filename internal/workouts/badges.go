package workouts

// badgeRule awards a badge when its threshold is met. The rules are
// evaluated in order, so the badge list is stable for a given history.
type badgeRule struct {
	name    string
	awarded func(totalWorkouts, totalSteps int, streak Streak) bool
}

var badgeRules = []badgeRule{
	{"3-Day Streak", func(_, _ int, s Streak) bool { return s.Current >= 3 }},
	{"7-Day Streak", func(_, _ int, s Streak) bool { return s.Current >= 7 }},
	{"14-Day Warrior", func(_, _ int, s Streak) bool { return s.Longest >= 14 }},
	{"10 Workouts Complete", func(workouts, _ int, _ Streak) bool { return workouts >= 10 }},
	{"50 Workouts Legend", func(workouts, _ int, _ Streak) bool { return workouts >= 50 }},
	{"Walked a 5k", func(_, steps int, _ Streak) bool { return steps >= 7000 }},
	{"Walked a 10k", func(_, steps int, _ Streak) bool { return steps >= 14000 }},
	{"Walked a 15k", func(_, steps int, _ Streak) bool { return steps >= 21000 }},
	{"Walked a Half-Marathon", func(_, steps int, _ Streak) bool { return steps >= 30000 }},
	{"Walked a Marathon", func(_, steps int, _ Streak) bool { return steps >= 60000 }},
}

// Badges returns the achievement badges earned by the given workout
// history and streaks. Step milestones count lifetime steps over all
// workouts, not a single session.
func Badges(workouts []Workout, streak Streak) []string {
	totalSteps := 0
	for _, w := range workouts {
		totalSteps += w.Steps
	}

	badges := make([]string, 0)
	for _, rule := range badgeRules {
		if rule.awarded(len(workouts), totalSteps, streak) {
			badges = append(badges, rule.name)
		}
	}
	return badges
}
