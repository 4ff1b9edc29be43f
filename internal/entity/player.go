package entity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const MaxPlayers = 2

type Player struct {
	Name  string `json:"name"`
	Token Token  `json:"token"`
}

// NewPlayers builds both players of one game. Player n gets the n-th name, or "Player n" when it is blank,
// and the first player always holds X.
func NewPlayers(names ...string) ([]*Player, error) {
	if len(names) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d names, at most %d allowed", apperror.ErrInvalidPlayers, len(names), MaxPlayers)
	}

	tokens := [MaxPlayers]Token{TokenX, TokenO}

	return lo.Times(MaxPlayers, func(index int) *Player {
		name := ""
		if index < len(names) {
			name = strings.TrimSpace(names[index])
		}

		if name == "" {
			name = DefaultPlayerName(index)
		}

		return &Player{
			Name:  name,
			Token: tokens[index],
		}
	}), nil
}

// DefaultPlayerName returns the name of the player at the zero-based index.
func DefaultPlayerName(index int) string {
	return fmt.Sprintf("Player %d", index+1)
}

func (that *Player) String() string {
	return fmt.Sprintf("%s (%s)", that.Name, that.Token)
}
