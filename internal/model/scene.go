package model

// MergedScene is the combined view of every submission in a room.
type MergedScene struct {
	Toys    []string
	Kinks   []string
	Outfits []string

	Intensities    []Intensity
	FinalIntensity Intensity
	Roles          []Role

	Questionnaires []Questionnaire
}
