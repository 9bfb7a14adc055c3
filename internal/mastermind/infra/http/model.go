package http

const (
	ErrorKindGameNotFound        = "GameNotFound"
	ErrorKindInvalidGameSettings = "InvalidGameSettings"
	ErrorKindGameNotStarted      = "GameNotStarted"
	ErrorKindGameAlreadyStarted  = "GameAlreadyStarted"
	ErrorKindGameAlreadyWon      = "GameAlreadyWon"
	ErrorKindGameAlreadyLost     = "GameAlreadyLost"
	ErrorKindGuessTooShort       = "GuessTooShort"
	ErrorKindGuessTooLong        = "GuessTooLong"
	ErrorKindInvalidPegInGuess   = "InvalidPegInGuess"
)

type (
	StartGameIn struct {
		Secret        []string `json:"secret,omitempty"`
		CodeLength    int      `json:"codeLength,omitempty"`
		TotalAttempts int      `json:"totalAttempts,omitempty"`
		AvailablePegs []string `json:"availablePegs"`
	}

	StartGameOut struct {
		ID string `json:"id"`
	}

	MakeGuessIn struct {
		Guess []string `json:"guess"`
	}

	FeedbackOut struct {
		Outcome string   `json:"outcome"`
		Marks   []string `json:"marks"`
	}

	MakeGuessOut struct {
		FeedbackOut
		State    string `json:"state"`
		Attempts int    `json:"attempts"`
	}

	GuessOut struct {
		Code     []string    `json:"code"`
		Feedback FeedbackOut `json:"feedback"`
	}

	GameOut struct {
		ID            string     `json:"id"`
		State         string     `json:"state"`
		Attempts      int        `json:"attempts"`
		TotalAttempts int        `json:"totalAttempts"`
		AvailablePegs []string   `json:"availablePegs"`
		Guesses       []GuessOut `json:"guesses"`
		Secret        []string   `json:"secret,omitempty"`
	}

	ErrorOut struct {
		Error          string   `json:"error"`
		Message        string   `json:"message"`
		GameID         string   `json:"gameID,omitempty"`
		Guess          []string `json:"guess,omitempty"`
		RequiredLength int      `json:"requiredLength,omitempty"`
		AvailablePegs  []string `json:"availablePegs,omitempty"`
	}
)
