package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

var errNoPegs = errors.New("no pegs to choose from")

type generator struct{}

// NewGenerator picks every peg independently and uniformly, so pegs may repeat
func NewGenerator() service.SecretGenerator {
	return generator{}
}

func (generator) Generate(length int, available domain.PegSet) (domain.Code, error) {
	if length < 1 {
		return domain.Code{}, fmt.Errorf("invalid code length %d", length)
	}

	pegs := available.Pegs()
	if len(pegs) == 0 {
		return domain.Code{}, errNoPegs
	}

	n := big.NewInt(int64(len(pegs)))
	code := make([]domain.Peg, 0, length)
	for range length {
		i, err := rand.Int(rand.Reader, n)
		if err != nil {
			return domain.Code{}, fmt.Errorf("read random: %w", err)
		}
		code = append(code, pegs[i.Int64()])
	}

	return domain.NewCode(code...), nil
}
