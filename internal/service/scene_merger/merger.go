package scene_merger

import "github.com/humanbelnik/coordinator/internal/model"

// Merger folds every member's submission into one scene.
// It holds no state and is safe for concurrent use.
type Merger struct{}

func New() *Merger {
	return &Merger{}
}

// Merge expects at least one submission; callers reject empty rooms first.
// Set-like fields keep the order in which items were first seen.
func (m *Merger) Merge(subs []model.Submission) model.MergedScene {
	var (
		toys    = newOrderedSet()
		kinks   = newOrderedSet()
		outfits = newOrderedSet()

		scene = model.MergedScene{
			Intensities:    make([]model.Intensity, 0, len(subs)),
			Roles:          make([]model.Role, 0, len(subs)),
			Questionnaires: make([]model.Questionnaire, 0),
		}
	)

	for _, s := range subs {
		toys.add(s.Inventory...)
		kinks.add(s.Kinks...)
		outfits.add(s.Outfit...)

		intensity := s.Intensity
		if intensity == "" {
			intensity = model.DefaultIntensity
		}
		scene.Intensities = append(scene.Intensities, intensity)

		role := s.Role
		if role == "" {
			role = model.DefaultRole
		}
		scene.Roles = append(scene.Roles, role)

		if s.Questionnaire != nil {
			scene.Questionnaires = append(scene.Questionnaires, s.Questionnaire.Clone())
		}
	}

	scene.Toys = toys.items
	scene.Kinks = kinks.items
	scene.Outfits = outfits.items
	scene.FinalIntensity = escalate(scene.Intensities)

	return scene
}

// escalate picks the highest ranked intensity; the earliest one wins a tie.
func escalate(intensities []model.Intensity) model.Intensity {
	if len(intensities) == 0 {
		return ""
	}

	top := intensities[0]
	for _, i := range intensities[1:] {
		if i.Rank() > top.Rank() {
			top = i
		}
	}
	return top
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}),
		items: make([]string, 0),
	}
}

func (s *orderedSet) add(items ...string) {
	for _, item := range items {
		if _, ok := s.seen[item]; ok {
			continue
		}
		s.seen[item] = struct{}{}
		s.items = append(s.items, item)
	}
}
