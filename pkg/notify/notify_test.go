package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/notify"
)

func TestPublish_AgregaEnOrden(t *testing.T) {
	bus := notify.New(time.Minute)
	defer bus.Close()

	bus.Publish(notify.Success, "primero")
	bus.Publish(notify.Error, "segundo")

	active := bus.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "primero", active[0].Text)
	assert.Equal(t, "segundo", active[1].Text)
	assert.Equal(t, notify.Error, active[1].Level)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestDismiss_DescartaManualmente(t *testing.T) {
	bus := notify.New(time.Minute)
	defer bus.Close()

	id := bus.Publish(notify.Info, "transitorio")
	require.Len(t, bus.Active(), 1)

	bus.Dismiss(id)
	assert.Empty(t, bus.Active())

	// Descartar un ID desconocido no hace nada.
	bus.Dismiss("no-existe")
}

func TestPublish_ExpiraSolaTrasElTTL(t *testing.T) {
	bus := notify.New(20 * time.Millisecond)
	defer bus.Close()

	bus.Publish(notify.Warning, "efímero")
	require.Len(t, bus.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(bus.Active()) == 0
	}, time.Second, 5*time.Millisecond, "la notificación debe expirar sola")
}

func TestSubscribe_RecibeLoPublicado(t *testing.T) {
	bus := notify.New(time.Minute)
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(notify.Success, "hola")

	select {
	case msg := <-ch:
		assert.Equal(t, notify.Success, msg.Level)
		assert.Equal(t, "hola", msg.Text)
	case <-time.After(time.Second):
		t.Fatal("el suscriptor no recibió el mensaje")
	}
}

func TestSubscribe_CancelarCierraElCanal(t *testing.T) {
	bus := notify.New(time.Minute)
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "el canal debe quedar cerrado tras cancelar")

	// Cancelar dos veces es inocuo.
	cancel()
}

func TestClose_DetieneTimersYCierraSuscriptores(t *testing.T) {
	bus := notify.New(time.Minute)
	ch, _ := bus.Subscribe()

	bus.Publish(notify.Info, "pendiente")
	bus.Close()

	assert.Empty(t, bus.Active())

	// El canal del suscriptor queda cerrado (tras drenar lo pendiente).
	for {
		if _, ok := <-ch; !ok {
			break
		}
	}

	// Publicar tras Close es un no-op.
	assert.Empty(t, bus.Publish(notify.Info, "tarde"))
	assert.Empty(t, bus.Active())
}
