// Package cli implementa la interfaz de línea de comandos: el frontend de la
// API de clientes. Cada subcomando consume pkg/client y publica sus
// resultados en un bus de notificaciones que un suscriptor imprime.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/pkg/client"
	"github.com/jhoicas/clientes-api/pkg/notify"
)

var (
	apiBaseURL string
	api        *client.Client
	bus        *notify.Bus
	version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "clientes",
	Short: "Gestión de clientes vía la API REST",
	Long: `clientes es el frontend de terminal de la API de clientes:
alta, consulta, edición y baja de registros, más el estado del servicio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(apiBaseURL)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Imprime la versión",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clientes %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "URL base de la API (por defecto API_BASE_URL del entorno)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetVersion fija la versión mostrada por el comando version.
func SetVersion(v string) {
	version = v
}

// Execute corre el CLI. Monta el bus de notificaciones con un suscriptor que
// imprime, y lo desmonta (timers incluidos) antes de retornar.
func Execute() error {
	bus = notify.New(notify.DefaultTTL)
	ch, unsubscribe := bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range ch {
			printNotification(msg)
		}
	}()

	err := rootCmd.Execute()

	unsubscribe()
	<-done
	bus.Close()
	return err
}

func printNotification(msg notify.Message) {
	var icon string
	switch msg.Level {
	case notify.Success:
		icon = "✓"
	case notify.Error:
		icon = "✗"
	case notify.Warning:
		icon = "!"
	default:
		icon = "·"
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", icon, msg.Text)
}

// fail publica el error como notificación y lo devuelve para el código de
// salida (los errores están silenciados en cobra: el bus es quien imprime).
func fail(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		bus.Publish(notify.Error, apiErr.Message)
	} else {
		bus.Publish(notify.Error, err.Error())
	}
	return err
}
