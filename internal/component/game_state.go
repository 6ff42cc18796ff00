// internal/component/game_state.go
package component

// Phase: фаза симуляции. GameOver конечна.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game-over"
	}
	return "playing"
}
