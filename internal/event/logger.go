// internal/event/logger.go
package event

import "log"

// Logger пишет в лог по строке на каждое игровое событие.
type Logger struct {
	logger *log.Logger
}

func NewLogger(logger *log.Logger) *Logger {
	if logger == nil {
		logger = log.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case MoleSpawnedData:
		l.logger.Printf("%s kind=%s at (%.0f, %.0f)", e.Type, data.Kind, data.X, data.Y)
	case MoleKilledData:
		l.logger.Printf("%s kind=%s delta=%+d", e.Type, data.Kind, data.Kind.ScoreDelta())
	case CannonballFiredData:
		l.logger.Printf("%s origin=%s angle=%.1f", e.Type, data.Origin, data.Angle)
	case AmmoCollectedData:
		l.logger.Printf("%s ammo=%d capped=%v", e.Type, data.Ammo, data.Capped)
	case LevelUpData:
		l.logger.Printf("%s level=%d rabbits_cleared=%d", e.Type, data.Level, data.RabbitsCleared)
	case GameOverData:
		l.logger.Printf("%s score=%d level=%d", e.Type, data.Score, data.Level)
	case int:
		l.logger.Printf("%s value=%d", e.Type, data)
	default:
		l.logger.Printf("%s", e.Type)
	}
}
