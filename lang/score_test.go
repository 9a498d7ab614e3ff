package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLetter(t *testing.T) {
	assert.Equal(t, 1.0, ScoreLetter('E'))
	assert.Equal(t, 0.9, ScoreLetter('T'))
	assert.Equal(t, 0.65, ScoreLetter('D'))

	// Letters outside the tiered table get the flat default.
	assert.Equal(t, 0.25, ScoreLetter('Q'))
	assert.Equal(t, 0.25, ScoreLetter('Z'))
}

func TestScoreWord(t *testing.T) {
	dictionary := NewDictionary([]string{"HI"})

	t.Run("dictionary member gets the bonus", func(t *testing.T) {
		// H=0.7, I=0.75, +5.0 membership bonus.
		assert.InDelta(t, 6.45, ScoreWord("HI", dictionary), 1e-9)
	})

	t.Run("non-member is letter scores only", func(t *testing.T) {
		// T=0.9 each, no bonus.
		assert.InDelta(t, 1.8, ScoreWord("TT", dictionary), 1e-9)
	})

	t.Run("long words are penalized", func(t *testing.T) {
		long := "QQQQQQQQQQQQQ" // 13 letters at 0.25 each
		assert.InDelta(t, 13*0.25-2.0, ScoreWord(long, dictionary), 1e-9)
	})

	t.Run("twelve letters escape the penalty", func(t *testing.T) {
		word := "QQQQQQQQQQQQ"
		assert.InDelta(t, 12*0.25, ScoreWord(word, dictionary), 1e-9)
	})
}
