package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Muestra un cliente por ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := api.Get(args[0])
		if err != nil {
			return fail(err)
		}
		fmt.Printf("ID:          %s\n", c.ID)
		fmt.Printf("Nombre:      %s\n", c.Name)
		fmt.Printf("Email:       %s\n", c.Email)
		fmt.Printf("Teléfono:    %s\n", phoneOrDash(c.Phone))
		fmt.Printf("Registrado:  %s\n", c.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Actualizado: %s\n", c.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
