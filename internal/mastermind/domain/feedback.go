package domain

import "slices"

func (g startedGame) feedbackOn(guess Code) Feedback {
	exactHits, colorHits := score(g.secret, guess)

	outcome := OutcomeInProgress
	switch {
	case exactHits == g.secret.Length():
		outcome = OutcomeWon
	case g.attempts+1 >= g.totalAttempts:
		outcome = OutcomeLost
	}

	marks := make([]Mark, 0, exactHits+colorHits)
	for i := 0; i < exactHits; i++ {
		marks = append(marks, MarkBlack)
	}
	for i := 0; i < colorHits; i++ {
		marks = append(marks, MarkWhite)
	}

	return NewFeedback(outcome, marks...)
}

// score expects codes of equal length.
func score(secret, guess Code) (exactHits, colorHits int) {
	remainingSecret := make([]Peg, 0, secret.Length())
	remainingGuess := make([]Peg, 0, guess.Length())
	for i, secretPeg := range secret.pegs {
		if guess.pegs[i] == secretPeg {
			exactHits++
			continue
		}

		remainingSecret = append(remainingSecret, secretPeg)
		remainingGuess = append(remainingGuess, guess.pegs[i])
	}

	for _, peg := range remainingGuess {
		i := slices.Index(remainingSecret, peg)
		if i < 0 {
			continue
		}

		colorHits++
		remainingSecret = slices.Delete(remainingSecret, i, i+1)
	}

	return exactHits, colorHits
}
