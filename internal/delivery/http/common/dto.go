package http_common

import "github.com/humanbelnik/coordinator/internal/model"

// SubmissionDTO is what a member sends on sync. Intensity must be present
// but is free text: empty values and values off the scale rank like
// adventurous.
type SubmissionDTO struct {
	Role      string   `json:"role" binding:"required,oneof=dom sub switch"`
	Intensity *string  `json:"intensity" binding:"required"`
	Inventory []string `json:"inventory" binding:"required"`
	Outfit    []string `json:"outfit" binding:"required"`
	Kinks     []string `json:"kinks" binding:"required"`
}

func (d SubmissionDTO) ToModel() model.Submission {
	var intensity model.Intensity
	if d.Intensity != nil {
		intensity = model.Intensity(*d.Intensity)
	}
	return model.Submission{
		Role:      model.Role(d.Role),
		Intensity: intensity,
		Inventory: d.Inventory,
		Outfit:    d.Outfit,
		Kinks:     d.Kinks,
	}
}

type QuestionnaireDTO struct {
	Theme       *string  `json:"theme"`
	Preferences []string `json:"preferences"`
	Notes       *string  `json:"notes"`
}

func (d QuestionnaireDTO) ToModel() model.Questionnaire {
	return model.Questionnaire{
		Theme:       d.Theme,
		Preferences: d.Preferences,
		Notes:       d.Notes,
	}
}

func FromQuestionnaire(q model.Questionnaire) QuestionnaireDTO {
	return QuestionnaireDTO{
		Theme:       q.Theme,
		Preferences: q.Preferences,
		Notes:       q.Notes,
	}
}
