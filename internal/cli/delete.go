package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/pkg/notify"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un cliente (pide confirmación)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !deleteYes {
			fmt.Printf("¿Eliminar el cliente %s? Esta acción no se puede deshacer. [s/N]: ", id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "s" && answer != "si" && answer != "sí" {
				fmt.Println("Cancelado.")
				return nil
			}
		}
		if err := api.Delete(id); err != nil {
			return fail(err)
		}
		bus.Publish(notify.Success, "cliente eliminado correctamente")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "elimina sin pedir confirmación")
}
