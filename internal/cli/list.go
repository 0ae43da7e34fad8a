package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/pkg/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todos los clientes (el más reciente primero)",
	RunE: func(cmd *cobra.Command, args []string) error {
		customers, err := api.List()
		if err != nil {
			return fail(err)
		}
		if len(customers) == 0 {
			fmt.Println("No hay clientes registrados.")
			return nil
		}
		printCustomerTable(customers)
		return nil
	},
}

func printCustomerTable(customers []client.Customer) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tTELÉFONO\tREGISTRADO")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Email, phoneOrDash(c.Phone),
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

func phoneOrDash(phone *string) string {
	if phone == nil || *phone == "" {
		return "—"
	}
	return *phone
}
