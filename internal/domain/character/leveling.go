package character

// ExpToNextLevel returns the experience threshold that takes a character
// from the given level to the next one. The curve is a recurrence: level 1
// needs 50, and each step multiplies the previous threshold by 1.1, with a
// +1.0 step bonus when the target level is a multiple of 10 and a +0.5
// step bonus when it is a multiple of 5. The multiple-of-10 bonus takes
// precedence, so the 9 to 10 step compounds at 2.1, not 1.6.
func ExpToNextLevel(level int) float64 {
	if level < 1 {
		level = 1
	}

	threshold := 50.0
	for l := 2; l <= level; l++ {
		threshold *= stepMultiplier(l + 1)
	}
	return threshold
}

func stepMultiplier(targetLevel int) float64 {
	step := 1.1
	switch {
	case targetLevel%10 == 0:
		step += 1.0
	case targetLevel%5 == 0:
		step += 0.5
	}
	return step
}
