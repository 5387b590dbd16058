package progress

const (
	// ExerciseXP is awarded for each correctly answered exercise.
	ExerciseXP = 10

	// LessonBonusXP is awarded once per lesson, the first time it is completed.
	LessonBonusXP = 50

	// xpPerLevel scales the XP needed to leave a level.
	xpPerLevel = 100
)

// LevelThreshold returns the XP total at which a learner leaves the given level.
// XP is cumulative and never reset on level-up.
func LevelThreshold(level int) int {
	return xpPerLevel * level
}

// LevelForXP returns the smallest level whose threshold is above xp.
func LevelForXP(xp int) int {
	level := 1
	for xp >= LevelThreshold(level) {
		level++
	}
	return level
}
