package evaluation

// NextPressure is the territorial pressure transition: one more decision spent
// on the home half increments the count, a decision on the opponent's half
// resets it.
func NextPressure(count int, onHome bool) int {
	if !onHome {
		return 0
	}
	return count + 1
}

// Pressure counts consecutive decisions an agent has spent on its own half. It
// belongs to a single agent and is stepped once per decision.
type Pressure struct {
	count int
}

func (p *Pressure) Step(onHome bool) int {
	p.count = NextPressure(p.count, onHome)
	return p.count
}

func (p *Pressure) Value() int {
	return p.count
}
