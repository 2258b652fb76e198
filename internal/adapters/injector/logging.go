// Package injector provides Input Injector implementations. The real
// synthetic-input dispatch is an external OS capability; the logging
// injector stands in for it in dev mode and records what would be sent.
package injector

import (
	"github.com/rs/zerolog"
)

type Logging struct {
	logger *zerolog.Logger
	width  int
	height int
}

func NewLogging(logger *zerolog.Logger, displayWidth, displayHeight int) *Logging {
	if displayWidth <= 0 {
		displayWidth = 1920
	}
	if displayHeight <= 0 {
		displayHeight = 1080
	}
	return &Logging{logger: logger, width: displayWidth, height: displayHeight}
}

func (l *Logging) MoveTo(x, y int) error {
	l.logger.Debug().Int("x", x).Int("y", y).Msg("inject move")
	return nil
}

func (l *Logging) Click(x, y int, button string) error {
	l.logger.Debug().Int("x", x).Int("y", y).Str("button", button).Msg("inject click")
	return nil
}

func (l *Logging) Drag(x, y int) error {
	l.logger.Debug().Int("x", x).Int("y", y).Msg("inject drag")
	return nil
}

func (l *Logging) Scroll(amount int) error {
	l.logger.Debug().Int("amount", amount).Msg("inject scroll")
	return nil
}

func (l *Logging) KeyDown(symbol string) error {
	l.logger.Debug().Str("key", symbol).Msg("inject keydown")
	return nil
}

func (l *Logging) KeyUp(symbol string) error {
	l.logger.Debug().Str("key", symbol).Msg("inject keyup")
	return nil
}

func (l *Logging) TypeText(text string) error {
	l.logger.Debug().Int("len", len(text)).Msg("inject type")
	return nil
}

func (l *Logging) ScreenSize() (int, int, error) {
	return l.width, l.height, nil
}
