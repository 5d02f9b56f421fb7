package models

// contains all valid interview modes
var ValidModes = map[string]bool{
	"Technical Interview":          true,
	"HR / Behavioral":              true,
	"System Design":                true,
	"Data Structures & Algorithms": true,
}

func ValidModesList() []string {
	return []string{
		"Technical Interview",
		"HR / Behavioral",
		"System Design",
		"Data Structures & Algorithms",
	}
}

// bounds of the common scoring scale shared by questions and the final report
const (
	ScoreMin = 0.0
	ScoreMax = 10.0
)
