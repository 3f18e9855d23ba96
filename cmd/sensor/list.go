package sensor

import (
	"bytes"
	"strconv"

	"github.com/markusressel/temp2go/cmd/global"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured sensors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := configuration.LoadRegistry()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, id := range registry.Ids() {
			sensor := registry.Resolve(id)
			rows = append(rows, []string{
				strconv.Itoa(int(id)),
				sensor.Name,
				registry.Group(id).String(),
				sensor.Polarity.String(),
				strconv.Itoa(int(sensor.TempMin)),
				strconv.Itoa(int(sensor.TempMax)),
				strconv.Itoa(int(sensor.Step)),
				strconv.Itoa(sensor.TableSize()),
			})
		}

		return printTable([]string{"ID", "Name", "Group", "Polarity", "Min °C", "Max °C", "Step", "Entries"}, rows)
	},
}

func printTable(headers []string, rows [][]string) error {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if err != nil {
		return err
	}
	ui.Printfln("%s", buf.String())
	return nil
}

func init() {
	Command.AddCommand(listCmd)
}
