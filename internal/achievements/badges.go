package achievements

// Badge codes.
const (
	CodeFirstWin   = "first_win"
	CodeCenturion  = "centurion"
	CodeSniper     = "sniper"
	CodeSpeedDemon = "speed_demon"
	CodeMarathon   = "marathon"
	CodeMasterMind = "master_mind"
)

// Badge describes one unlockable achievement.
type Badge struct {
	Code string
	Name string
	Desc string
}

// Badges lists every badge in display order.
var Badges = []Badge{
	{CodeFirstWin, "First Steps", "Complete your first session"},
	{CodeCenturion, "Centurion", "Answer 100 questions total"},
	{CodeSniper, "Sniper", "100% accuracy in a session of 20+ questions"},
	{CodeSpeedDemon, "Speed Demon", "Average under 2.0s in a session of 20+ questions"},
	{CodeMarathon, "Marathoner", "Complete a session of 50+ questions"},
	{CodeMasterMind, "Master Mind", "90%+ accuracy in a mixed session of 20+ questions"},
}

func badgeByCode(code string) (Badge, bool) {
	for _, b := range Badges {
		if b.Code == code {
			return b, true
		}
	}
	return Badge{}, false
}

// Status pairs a badge with its unlock state.
type Status struct {
	Badge
	Unlocked bool
}
