// Package notify es un bus de notificaciones transitorias (estilo toast):
// mensajes con nivel que se descartan solos tras un TTL o manualmente.
// Es un objeto explícito que se inyecta a quien necesite publicar, en lugar
// de estado global ambiental.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level severidad de una notificación.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

// DefaultTTL duración por defecto antes del descarte automático.
const DefaultTTL = 5 * time.Second

// Message una notificación publicada en el bus.
type Message struct {
	ID       string
	Level    Level
	Text     string
	PostedAt time.Time
}

type activeEntry struct {
	msg   Message
	timer *time.Timer
}

// Bus bus de notificaciones. Seguro para uso concurrente.
type Bus struct {
	mu     sync.Mutex
	ttl    time.Duration
	active []*activeEntry
	subs   map[int]chan Message
	nextID int
	closed bool
}

// New crea un bus con el TTL indicado (<= 0 usa DefaultTTL).
func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Bus{
		ttl:  ttl,
		subs: make(map[int]chan Message),
	}
}

// Publish agrega una notificación y la entrega a los suscriptores.
// Devuelve el ID del mensaje, útil para descartarlo manualmente.
func (b *Bus) Publish(level Level, text string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ""
	}
	msg := Message{
		ID:       uuid.New().String(),
		Level:    level,
		Text:     text,
		PostedAt: time.Now(),
	}
	entry := &activeEntry{msg: msg}
	entry.timer = time.AfterFunc(b.ttl, func() { b.Dismiss(msg.ID) })
	b.active = append(b.active, entry)

	for _, ch := range b.subs {
		// Entrega sin bloqueo: un suscriptor lento no frena al resto.
		select {
		case ch <- msg:
		default:
		}
	}
	return msg.ID
}

// Dismiss descarta una notificación antes de su expiración. Descartar un ID
// desconocido no hace nada.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, entry := range b.active {
		if entry.msg.ID == id {
			entry.timer.Stop()
			b.active = append(b.active[:i], b.active[i+1:]...)
			return
		}
	}
}

// Active devuelve las notificaciones vigentes en orden de publicación.
func (b *Bus) Active() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, 0, len(b.active))
	for _, entry := range b.active {
		out = append(out, entry.msg)
	}
	return out
}

// Subscribe registra un consumidor. El segundo valor cancela la suscripción
// y cierra el canal; debe llamarse al desmontar el consumidor.
func (b *Bus) Subscribe() (<-chan Message, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Message, 16)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close detiene todos los timers pendientes y cierra los canales de los
// suscriptores. El bus no acepta más publicaciones después de Close.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, entry := range b.active {
		entry.timer.Stop()
	}
	b.active = nil
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
