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
	updateName  string
	updateEmail string
	updatePhone string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Actualiza campos de un cliente (solo los flags indicados)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in client.UpdateCustomerInput
		if cmd.Flags().Changed("name") {
			name := strings.TrimSpace(updateName)
			if name == "" {
				return fail(fmt.Errorf("el nombre no puede quedar vacío"))
			}
			in.Name = &name
		}
		if cmd.Flags().Changed("email") {
			email := strings.TrimSpace(updateEmail)
			if !usecase.ValidEmail(email) {
				return fail(fmt.Errorf("el formato del email no es válido"))
			}
			in.Email = &email
		}
		if cmd.Flags().Changed("phone") {
			in.Phone = &updatePhone
		}
		if in.Name == nil && in.Email == nil && in.Phone == nil {
			return fail(fmt.Errorf("nada que actualizar: indique --name, --email o --phone"))
		}
		c, err := api.Update(args[0], in)
		if err != nil {
			return fail(err)
		}
		bus.Publish(notify.Success, fmt.Sprintf("cliente %s actualizado", c.ID))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "nuevo nombre")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "nuevo email")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "nuevo teléfono (vacío lo borra)")
}
