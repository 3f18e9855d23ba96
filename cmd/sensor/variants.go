package sensor

import (
	"strconv"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the known sensor variants that can be referenced in the config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, v := range sensors.Catalog {
			rows = append(rows, []string{
				v.Name,
				v.Group.String(),
				v.Polarity.String(),
				strconv.Itoa(int(v.TempMin)),
				strconv.Itoa(int(v.TempMax)),
				strconv.Itoa(int(v.Step)),
				v.Description,
			})
		}
		return printTable([]string{"Variant", "Group", "Polarity", "Min °C", "Max °C", "Step", "Description"}, rows)
	},
}

func init() {
	Command.AddCommand(variantsCmd)
}
