// internal/utils/math.go
package utils

import "math"

// Углы в игре измеряются в градусах: 0° смотрит вверх, положительные углы
// поворачивают против часовой стрелки (влево), как у пушки.

// Radians переводит градусы в радианы.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees переводит радианы в градусы.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// HeadingVector возвращает смещение за один тик для объекта, летящего под
// игровым углом angle со скоростью speed.
func HeadingVector(angle, speed float64) (dx, dy float64) {
	corrected := Radians(-angle - 90)
	return speed * math.Cos(corrected), speed * math.Sin(corrected)
}

// HeadingAngle обратна HeadingVector: игровой угол, под которым нужно
// лететь, чтобы двигаться вдоль (dx, dy). Результат в [0, 360).
func HeadingAngle(dx, dy float64) float64 {
	return NormalizeDegrees(-Degrees(math.Atan2(dy, dx)) - 90)
}

// NormalizeDegrees нормализует угол в диапазон [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
