// internal/event/event.go
package event

// EventType: тип события.
type EventType string

// Event передаётся слушателям синхронно, внутри текущего тика.
type Event struct {
	Type EventType
	Data interface{} // одна из структур из types.go или nil
}

// Listener: интерфейс для подписчиков на события.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher рассылает события в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
	catchAll  []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на события типа eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на все события. Такие слушатели
// вызываются после слушателей конкретного типа.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.catchAll = append(d.catchAll, listener)
}

// Dispatch отправляет событие всем подписчикам.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.catchAll {
		listener.OnEvent(event)
	}
}
