// Package leveling turns accumulated XP into levels and holds the
// gacha reward catalog.
package leveling

// Thresholds is the ascending XP table: index i is the total XP
// required to reach level i+1.
var Thresholds = []float64{0, 10, 25, 50, 100, 180, 300, 500, 800, 1200}

// Policy decides what happens past the end of the threshold table.
type Policy int

const (
	// PolicyClamp treats the last tabulated level as the ceiling.
	PolicyClamp Policy = iota
	// PolicyExtend continues past the table by repeating the last gap
	// plus ExtendStep per level, up to MaxLevel.
	PolicyExtend
)

// ExtendStep is the per-level increase of the XP gap under PolicyExtend.
const ExtendStep = 400

// MaxLevel is the hard ceiling under PolicyExtend.
const MaxLevel = 100

// thresholdFor returns the total XP required to reach the given
// 1-indexed level under the policy.
func thresholdFor(level int, policy Policy) float64 {
	if level <= 1 {
		return 0
	}
	if level <= len(Thresholds) {
		return Thresholds[level-1]
	}
	if policy == PolicyClamp {
		return Thresholds[len(Thresholds)-1]
	}
	last := Thresholds[len(Thresholds)-1]
	gap := last - Thresholds[len(Thresholds)-2]
	for l := len(Thresholds) + 1; l <= level; l++ {
		gap += ExtendStep
		last += gap
	}
	return last
}

// LevelForXP returns the 1-indexed level for the given total XP: the
// highest level whose threshold is <= xp. Negative XP yields level 1.
func LevelForXP(xp float64, policy Policy) int {
	level := 1
	for i, th := range Thresholds {
		if xp >= th {
			level = i + 1
		} else {
			return level
		}
	}
	if policy == PolicyClamp {
		return level
	}
	for level < MaxLevel && xp >= thresholdFor(level+1, policy) {
		level++
	}
	return level
}

// Progress describes position within the current level.
type Progress struct {
	Current  float64 `json:"current"`  // XP gained since the current level's threshold
	Required float64 `json:"required"` // XP span of the current level
	Percent  float64 `json:"percent"`  // 0-100
}

// XPToNextLevel reports progress toward the next level. At the table
// ceiling the required span collapses to zero and progress is pinned
// to 100 by convention.
func XPToNextLevel(xp float64, policy Policy) Progress {
	level := LevelForXP(xp, policy)
	cur := thresholdFor(level, policy)
	next := thresholdFor(level+1, policy)

	p := Progress{
		Current:  xp - cur,
		Required: next - cur,
	}
	if p.Required <= 0 {
		p.Percent = 100
		return p
	}
	p.Percent = p.Current / p.Required * 100
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}
