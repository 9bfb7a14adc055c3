package secret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/secret"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()
	pegs := domain.PegSetOf("Red", "Green", "Blue")
	generator := secret.NewGenerator()

	for _, length := range []int{1, 4, 10} {
		code, err := generator.Generate(length, pegs)
		require.NoError(t, err)
		assert.Equal(t, length, code.Length())
		for _, peg := range code.Pegs() {
			assert.True(t, pegs.Contains(peg), peg.Name())
		}
	}
}

func TestGenerator_Generate_SinglePeg(t *testing.T) {
	t.Parallel()

	code, err := secret.NewGenerator().Generate(3, domain.PegSetOf("Red"))
	require.NoError(t, err)
	assert.True(t, domain.CodeOf("Red", "Red", "Red").Equal(code))
}

func TestGenerator_Generate_ReturnsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
		pegs   domain.PegSet
	}{
		{name: "zero length", length: 0, pegs: domain.PegSetOf("Red")},
		{name: "negative length", length: -2, pegs: domain.PegSetOf("Red")},
		{name: "no pegs", length: 4, pegs: domain.PegSetOf()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := secret.NewGenerator().Generate(tt.length, tt.pegs)
			assert.Error(t, err)
		})
	}
}
