package domain

type (
	Command interface {
		AggregateID() GameID
		gameCommand()
	}

	JoinGame struct {
		GameID        GameID
		Secret        Code
		TotalAttempts int
		AvailablePegs PegSet
	}

	MakeGuess struct {
		GameID GameID
		Guess  Code
	}
)

func (c JoinGame) AggregateID() GameID {
	return c.GameID
}

func (c MakeGuess) AggregateID() GameID {
	return c.GameID
}

func (JoinGame) gameCommand()  {}
func (MakeGuess) gameCommand() {}

func commandGameID(cmd Command) GameID {
	if cmd == nil {
		return ""
	}

	return cmd.AggregateID()
}
