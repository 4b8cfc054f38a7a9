package manager

import (
	"snake-infinity/game/types"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// ErrInvalidTransition is returned for screen changes outside the allowed graph.
var ErrInvalidTransition = errors.New("invalid screen transition")

var transitions = map[types.Screen]types.Screen{
	types.ScreenStart:    types.ScreenPlaying,
	types.ScreenPlaying:  types.ScreenGameOver,
	types.ScreenGameOver: types.ScreenPlaying,
}

// ScreenManager tracks which screen is active.
type ScreenManager struct {
	current types.Screen
	logger  *log.Logger
}

func NewScreenManager(logger *log.Logger) *ScreenManager {
	return &ScreenManager{
		current: types.ScreenStart,
		logger:  logger,
	}
}

func (sm *ScreenManager) Current() types.Screen {
	return sm.current
}

// Transition switches to the given screen if the move is allowed.
func (sm *ScreenManager) Transition(to types.Screen) error {
	if next, ok := transitions[sm.current]; !ok || next != to {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", sm.current, to)
	}
	sm.logger.Info("screen changed", "from", sm.current, "to", to)
	sm.current = to
	return nil
}
