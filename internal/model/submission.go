package model

type Role string

const (
	RoleDom    Role = "dom"
	RoleSub    Role = "sub"
	RoleSwitch Role = "switch"
)

// Fallback for members that only sent a questionnaire.
const DefaultRole = RoleSwitch

func (r Role) Valid() bool {
	switch r {
	case RoleDom, RoleSub, RoleSwitch:
		return true
	}
	return false
}

type Intensity string

const (
	IntensityCasual      Intensity = "casual"
	IntensityAdventurous Intensity = "adventurous"
	IntensityWeird       Intensity = "weird"
	IntensityDemon       Intensity = "demon"
)

const DefaultIntensity = IntensityAdventurous

// Escalation order, lowest first.
var IntensityScale = [...]Intensity{
	IntensityCasual,
	IntensityAdventurous,
	IntensityWeird,
	IntensityDemon,
}

const unknownIntensityRank = 1

// Rank is the position of i on IntensityScale. Values outside the scale
// rank the same as adventurous.
func (i Intensity) Rank() int {
	for rank, known := range IntensityScale {
		if i == known {
			return rank
		}
	}
	return unknownIntensityRank
}

func (i Intensity) Known() bool {
	for _, known := range IntensityScale {
		if i == known {
			return true
		}
	}
	return false
}

type Questionnaire struct {
	Theme       *string
	Preferences []string
	Notes       *string
}

func (q Questionnaire) Clone() Questionnaire {
	return Questionnaire{
		Theme:       cloneString(q.Theme),
		Preferences: cloneStrings(q.Preferences),
		Notes:       cloneString(q.Notes),
	}
}

type Submission struct {
	Role      Role
	Intensity Intensity
	Inventory []string
	Outfit    []string
	Kinks     []string

	Questionnaire *Questionnaire
}

// IsPlaceholder reports whether the member has only sent a questionnaire so far.
func (s Submission) IsPlaceholder() bool {
	return s.Role == "" && s.Intensity == ""
}

func (s Submission) Clone() Submission {
	c := Submission{
		Role:      s.Role,
		Intensity: s.Intensity,
		Inventory: cloneStrings(s.Inventory),
		Outfit:    cloneStrings(s.Outfit),
		Kinks:     cloneStrings(s.Kinks),
	}
	if s.Questionnaire != nil {
		q := s.Questionnaire.Clone()
		c.Questionnaire = &q
	}
	return c
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func cloneString(src *string) *string {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
