package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/pkg/client"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Panel de estado: sondea /health periódicamente",
	Long: `Consulta /health al arrancar y luego en cada intervalo, mostrando dos
indicadores independientes (servicio y base de datos) y la hora de la última
comprobación. Ctrl-C detiene el sondeo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		checkOnce()

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nSondeo detenido.")
				return nil
			case <-ticker.C:
				checkOnce()
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "intervalo entre comprobaciones")
}

// checkOnce consulta /health una vez y pinta ambos indicadores.
// Tres desenlaces: todo bien; el servicio responde pero la base de datos no
// (HTTP con error); o no hubo respuesta (Status 0: servicio caído).
func checkOnce() {
	serviceUp := false
	dbUp := false

	health, err := api.CheckHealth()
	if err == nil {
		serviceUp = true
		dbUp = health.Status == "ok" && health.Database.Supabase
	} else {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			serviceUp = true
		}
	}

	fmt.Printf("[%s]  servicio: %s   base de datos: %s\n",
		time.Now().Format("15:04:05"),
		indicator(serviceUp, "en línea", "caído"),
		indicator(dbUp, "conectada", "desconectada"),
	)
}

func indicator(ok bool, okLabel, badLabel string) string {
	if ok {
		return "● " + okLabel
	}
	return "○ " + badLabel
}
