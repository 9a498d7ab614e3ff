package lang

const (
	// defaultLetterScore applies to letters outside the frequency table.
	defaultLetterScore = 0.25
	// dictionaryBonus rewards exact dictionary membership.
	dictionaryBonus = 5.0
	// longWordPenalty discourages words longer than maxUnpenalizedLen.
	longWordPenalty   = 2.0
	maxUnpenalizedLen = 12
)

// letterFrequency holds fixed weights for high-frequency English letters.
var letterFrequency = map[byte]float64{
	'E': 1.0, 'T': 0.9, 'A': 0.85, 'O': 0.85, 'N': 0.8, 'R': 0.8,
	'I': 0.75, 'S': 0.75, 'H': 0.7, 'L': 0.7, 'D': 0.65,
}

// ScoreLetter returns the frequency weight of an uppercase letter.
// Letters outside the tiered table score a flat default.
func ScoreLetter(letter byte) float64 {
	if score, ok := letterFrequency[letter]; ok {
		return score
	}
	return defaultLetterScore
}

// ScoreWord values a completed word: the sum of its letter scores, a fixed
// bonus if it is a dictionary member, and a fixed penalty if it is longer
// than 12 letters.
func ScoreWord(word string, dictionary *Dictionary) float64 {
	score := 0.0
	for i := 0; i < len(word); i++ {
		score += ScoreLetter(word[i])
	}
	if dictionary.Contains(word) {
		score += dictionaryBonus
	}
	if len(word) > maxUnpenalizedLen {
		score -= longWordPenalty
	}
	return score
}
