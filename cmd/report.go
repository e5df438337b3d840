package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
	"github.com/gontzess/expense-tracker/internal/config"
	"github.com/gontzess/expense-tracker/internal/report"
)

var flagMonths int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly spending report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&flagMonths, "months", "n", 0, "Limit to the most recent N months (0 = config default)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	months := flagMonths
	if months <= 0 {
		months = cfg.Report.DefaultMonths
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	expenses, err := s.All()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		return cli.ErrNoExpenses
	}

	buckets := report.LastN(report.Monthly(expenses), months)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY SPENDING  Last %d months", len(buckets))))
	fmt.Println()

	rows := make([][]string, 0, len(buckets)+2)
	trend := make([]float64, 0, len(buckets))
	var count int64
	total := decimal.Zero
	for _, b := range buckets {
		rows = append(rows, []string{
			cli.FormatMonth(b.Key()),
			strconv.Itoa(b.Count),
			cli.FormatAmount(b.Total),
		})
		count += int64(b.Count)
		total = total.Add(b.Total)
		trend = append(trend, b.Total.InexactFloat64())
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatNumber(count), cli.FormatAmount(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Expenses", "Total"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Trend %s\n", cli.RenderSparkline(trend))
	return nil
}
