package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdewey/pburn/internal/config"
	"github.com/pdewey/pburn/internal/model"
	"github.com/pdewey/pburn/internal/pipeline"
	"github.com/pdewey/pburn/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagSeats        int
	flagRate         float64
	flagCapacityOnly bool
	flagQuiet        bool
	flagNoHistory    bool
)

var rootCmd = &cobra.Command{
	Use:   "pburn [report.csv]",
	Short: "Copilot Premium Usage Analyzer",
	Long:  "Analyze a GitHub Copilot premium request usage report: adoption, token utilization, productivity ROI, and insights.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagSeats, "seats", "s", 0, "Number of Copilot seat licenses")
	rootCmd.PersistentFlags().Float64VarP(&flagRate, "rate", "r", 0, "Developer hourly rate in USD (defaults from config, else 100)")
	rootCmd.PersistentFlags().BoolVar(&flagCapacityOnly, "capacity-only", false, "Analyze seat capacity without a usage report")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording this run in the history database")
}

// analysis bundles everything one run derives.
type analysis struct {
	Rows         []model.UsageRow
	Metrics      model.Metrics
	Capacity     model.Capacity
	Insights     []model.Insight
	Rate         float64
	ReportPath   string
	CapacityOnly bool
}

// noData reports the degenerate-but-valid case: a report was supplied but
// holds no usage rows. Distinct from capacity-only, which is intentional.
func (a *analysis) noData() bool {
	return len(a.Rows) == 0 && !a.CapacityOnly
}

// runAnalysis is the shared load-validate-compute path used by all commands.
// Seat validation runs before metrics computation, independently of
// capacity-only mode.
func runAnalysis(args []string) (*analysis, error) {
	cfg, _ := config.Load()

	seats := flagSeats
	if seats == 0 {
		seats = cfg.General.DefaultSeats
	}
	rate := flagRate
	if rate <= 0 {
		rate = cfg.General.HourlyRate
	}

	var (
		rows       []model.UsageRow
		reportPath string
	)
	switch {
	case flagCapacityOnly:
		if len(args) > 0 {
			return nil, errors.New("--capacity-only does not take a usage report")
		}
	case len(args) == 0:
		return nil, errors.New("usage report path required (or pass --capacity-only)")
	default:
		reportPath = args[0]
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Reading %s...\n", reportPath)
		}
		var err error
		rows, err = source.ReadFile(reportPath)
		if err != nil {
			return nil, err
		}
	}

	if seats == 0 {
		return nil, errors.New("seat count required: pass --seats or set default_seats via `pburn setup`")
	}
	if err := pipeline.ValidateSeats(rows, seats); err != nil {
		return nil, err
	}

	m := pipeline.Compute(rows, seats)
	return &analysis{
		Rows:         rows,
		Metrics:      m,
		Capacity:     pipeline.ComputeCapacity(m, rate),
		Insights:     pipeline.Generate(m, rate, flagCapacityOnly),
		Rate:         rate,
		ReportPath:   reportPath,
		CapacityOnly: flagCapacityOnly,
	}, nil
}

func printNoData() {
	fmt.Println()
	fmt.Println("  No premium token usage found.")
	fmt.Println("  The report contains no usage rows; no one has used premium features this period.")
	fmt.Println("  Run with --capacity-only to see the capacity analysis instead.")
	fmt.Println()
}
