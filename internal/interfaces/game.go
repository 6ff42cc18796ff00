package interfaces

// Direction: направление движения или поворота пушки.
type Direction int

const (
	Left Direction = iota
	Right
)

// Game: входная поверхность симуляции, которой пользуются фронтенды.
type Game interface {
	Update()
	PressMove(dir Direction)
	ReleaseMove(dir Direction)
	PressRotate(dir Direction)
	ReleaseRotate(dir Direction)
	Fire()
	IsOver() bool
	FinalScore() int
}
