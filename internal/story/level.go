package story

// Level is a JLPT difficulty level, N5 (easiest) through N1 (hardest).
type Level string

const (
	LevelN5 Level = "N5"
	LevelN4 Level = "N4"
	LevelN3 Level = "N3"
	LevelN2 Level = "N2"
	LevelN1 Level = "N1"
)

// Levels lists all levels easiest first, for pickers.
var Levels = []Level{LevelN5, LevelN4, LevelN3, LevelN2, LevelN1}

// Valid reports whether l is a known JLPT level.
func (l Level) Valid() bool {
	switch l {
	case LevelN5, LevelN4, LevelN3, LevelN2, LevelN1:
		return true
	}
	return false
}

// Description returns a short learner-facing description of the level.
func (l Level) Description() string {
	switch l {
	case LevelN5:
		return "Beginner: basic kanji, everyday phrases"
	case LevelN4:
		return "Elementary: familiar daily topics"
	case LevelN3:
		return "Intermediate: everyday situations in some depth"
	case LevelN2:
		return "Upper intermediate: natural articles and commentary"
	case LevelN1:
		return "Advanced: complex and abstract writing"
	}
	return ""
}
