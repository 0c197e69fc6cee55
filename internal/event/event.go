// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Queue собирает события движка за кадр. Подписчиков нет:
// слой представления сам забирает накопленное через Drain,
// поэтому порядок доставки всегда совпадает с порядком отправки.
type Queue struct {
	events []Event
}

// NewQueue — создаёт новую очередь
func NewQueue() *Queue {
	return &Queue{}
}

// Push добавляет событие в конец очереди.
func (q *Queue) Push(eventType EventType, data interface{}) {
	q.events = append(q.events, Event{Type: eventType, Data: data})
}

// Drain возвращает накопленные события и очищает очередь.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	drained := q.events
	q.events = nil
	return drained
}

// Len возвращает число необработанных событий.
func (q *Queue) Len() int {
	return len(q.events)
}
