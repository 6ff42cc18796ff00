// pkg/render/termrender/input.go
package termrender

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Action: игровое действие, на которое отображается клавиша.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	RotateLeft
	RotateRight
	Fire
	Restart
	Quit
)

// ActionForKey возвращает действие для нажатой клавиши.
func ActionForKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return MoveLeft, true
	case tcell.KeyRight:
		return MoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'q', 'Q':
			return RotateLeft, true
		case 'd', 'D', 'e', 'E':
			return RotateRight, true
		case ' ':
			return Fire, true
		case 'r', 'R':
			return Restart, true
		}
	}
	return 0, false
}

// HoldTracker восстанавливает удержание клавиш по автоповтору терминала:
// клавиша считается отпущенной, если повтор не пришёл за timeout тиков.
type HoldTracker struct {
	timeout int
	idle    map[Action]int
}

func NewHoldTracker(timeout int) *HoldTracker {
	return &HoldTracker{timeout: timeout, idle: make(map[Action]int)}
}

// Press отмечает нажатие или повтор. Возвращает true, если удержание
// только началось.
func (h *HoldTracker) Press(a Action) bool {
	_, held := h.idle[a]
	h.idle[a] = 0
	return !held
}

func (h *HoldTracker) Held(a Action) bool {
	_, held := h.idle[a]
	return held
}

// Tick отсчитывает тик и возвращает отпущенные действия по порядку.
func (h *HoldTracker) Tick() []Action {
	var released []Action
	for a, n := range h.idle {
		n++
		if n >= h.timeout {
			delete(h.idle, a)
			released = append(released, a)
			continue
		}
		h.idle[a] = n
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Reset забывает все удержания.
func (h *HoldTracker) Reset() {
	clear(h.idle)
}
