// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 60
	GroundHeight   = 100
	TopOfGroundY   = ScreenHeight - GroundHeight

	StartingLives = 3
	StartingLevel = 1
	StartingAmmo  = 0
	MaxAmmo       = 10

	PlayerStep     = 5.0  // пикселей за тик
	WheelSpinStep  = 5.0  // градусов за тик
	RotationStep   = 5.0  // градусов за тик
	MaxCannonAngle = 85.0 // градусов от вертикали в каждую сторону

	CannonballSpeed = 10.0 // пикселей за тик

	// Появление кротов и патронов: бросок [SpawnRollMin, SpawnRollMax],
	// спавн только при выпадении SpawnSentinel (1 из 100 за тик).
	SpawnRollMin  = 1
	SpawnRollMax  = 100
	SpawnSentinel = 1

	// Вид крота: бросок [MoleKindRollMin, MoleKindRollMax].
	MoleKindRollMin = 0
	MoleKindRollMax = 10
	MiniMoleRoll    = 1
	RabbitRoll      = 2

	// Ответный огонь: бросок [1, MoleFireRange], выстрел при значении <= уровня.
	MoleFireRange = 300

	ScoreNormal = 1
	ScoreMini   = 3
	ScoreRabbit = -3

	MiniMoleScale         = 0.5
	ClearRabbitsOnLevelUp = true

	MoleTopMargin = 20.0 // отступ зоны появления от верха экрана
	MoleClearance = 20.0 // зазор между зоной появления и верхом пушки

	CannonWidth  = 24.0
	CannonHeight = 60.0
	WheelWidth   = 40.0
	WheelHeight  = 40.0
	MoleWidth    = 44.0
	MoleHeight   = 44.0
	RabbitWidth  = 36.0
	RabbitHeight = 48.0
	BallSize     = 10.0
	AmmoWidth    = 22.0
	AmmoHeight   = 22.0

	TextCharWidth = 7
	TextHeight    = 13

	HUDMarginX  = 10
	HUDMarginY  = 10
	HUDLineStep = 18

	// Терминал не сообщает об отпускании клавиш: клавиша считается
	// отпущенной, если автоповтор не пришёл за столько тиков.
	HoldTimeoutTicks = 8
)

var (
	BackgroundColor = color.RGBA{135, 206, 235, 255}
	GroundColor     = color.RGBA{34, 139, 34, 255}
	CannonColor     = color.RGBA{60, 60, 70, 255}
	WheelColor      = color.RGBA{120, 72, 30, 255}
	MoleColor       = color.RGBA{101, 67, 33, 255}
	MiniMoleColor   = color.RGBA{160, 110, 60, 255}
	RabbitColor     = color.RGBA{240, 240, 240, 255}
	PlayerBallColor = color.RGBA{20, 20, 20, 255}
	MoleBallColor   = color.RGBA{220, 40, 40, 255}
	AmmoColor       = color.RGBA{255, 215, 0, 255}
	TextColor       = color.RGBA{20, 20, 30, 255}
	GameOverColor   = color.RGBA{0, 0, 0, 160}
)
