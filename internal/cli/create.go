package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/pkg/client"
	"github.com/jhoicas/clientes-api/pkg/notify"
)

var (
	createName  string
	createEmail string
	createPhone string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Registra un cliente nuevo",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validación local, espejo de la del servidor: la petición ni se
		// envía si el formulario no es válido.
		name := strings.TrimSpace(createName)
		email := strings.TrimSpace(createEmail)
		if name == "" || email == "" {
			return fail(fmt.Errorf("name y email son requeridos"))
		}
		if !usecase.ValidEmail(email) {
			return fail(fmt.Errorf("el formato del email no es válido"))
		}
		c, err := api.Create(client.CreateCustomerInput{
			Name:  name,
			Email: email,
			Phone: createPhone,
		})
		if err != nil {
			return fail(err)
		}
		bus.Publish(notify.Success, fmt.Sprintf("cliente %s registrado (id %s)", c.Name, c.ID))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "nombre del cliente (requerido)")
	createCmd.Flags().StringVar(&createEmail, "email", "", "email del cliente (requerido)")
	createCmd.Flags().StringVar(&createPhone, "phone", "", "teléfono (opcional)")
}
