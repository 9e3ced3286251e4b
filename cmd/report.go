package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/model"
	"github.com/pdewey/pburn/internal/pipeline"
	"github.com/pdewey/pburn/internal/store"

	"github.com/spf13/cobra"
)

var flagJSON bool

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit metrics and insights as JSON")
}

func runReport(_ *cobra.Command, args []string) error {
	a, err := runAnalysis(args)
	if err != nil {
		return err
	}
	if a.noData() {
		printNoData()
		return nil
	}

	if !flagNoHistory {
		recordRun(a)
	}

	if flagJSON {
		return writeJSON(os.Stdout, a)
	}

	m := a.Metrics

	fmt.Println()
	if a.CapacityOnly {
		fmt.Println(cli.RenderTitle("COPILOT CAPACITY ANALYSIS"))
	} else {
		fmt.Println(cli.RenderTitle("COPILOT PREMIUM USAGE"))
	}
	fmt.Println()

	if !a.CapacityOnly {
		fmt.Println(cli.RenderCards([]cli.Card{
			{
				Label:    "Premium Tokens Used",
				Value:    cli.FormatQuantity(m.TotalRequests),
				Subtitle: fmt.Sprintf("avg %.1f per active user", m.AvgRequestsPerActiveUser),
			},
			{
				Label:    "Adoption Rate",
				Value:    cli.FormatPercent(m.AdoptionRate),
				Subtitle: fmt.Sprintf("%d of %d licenses active", m.ActiveUsers, m.TotalSeats),
			},
			{
				Label:    "Token Utilization",
				Value:    cli.FormatPercent(m.QuotaUsagePercent),
				Subtitle: fmt.Sprintf("of %d available tokens", m.TotalSeats*pipeline.MonthlyQuotaPerSeat),
			},
		}))
		fmt.Println()

		fmt.Printf("  Adoption     %s\n", cli.RenderProgressBar(m.AdoptionRate, 30))
		fmt.Printf("  Utilization  %s\n", cli.RenderProgressBar(m.QuotaUsagePercent, 30))
		fmt.Println()
	}

	renderProductivity(a)
	renderInsights(a.Insights)

	if !a.CapacityOnly {
		renderUserTable(m)
	}
	renderMethodology(a)

	return nil
}

// renderProductivity prints the opportunity / time saved / unused potential
// breakdown.
func renderProductivity(a *analysis) {
	c := a.Capacity
	rows := [][]string{
		{"Total Opportunity", cli.FormatHours0(c.TotalHours) + " hrs", "$" + cli.FormatQuantity(c.TotalValue)},
	}
	if !a.CapacityOnly {
		rows = append(rows,
			[]string{"Time Saved", cli.FormatHours0(c.UsedHours) + " hrs", "$" + cli.FormatQuantity(c.UsedValue)},
			[]string{"Unused Potential", cli.FormatHours0(c.LostHours) + " hrs", "$" + cli.FormatQuantity(c.LostValue)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Productivity Opportunity",
		Headers: []string{"Metric", "Hours", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
}

func renderInsights(insights []model.Insight) {
	for _, in := range insights {
		fmt.Println(cli.RenderInsight(in.Title, in.Text, 72))
		fmt.Println()
	}
}

func renderUserTable(m model.Metrics) {
	users := pipeline.RankedUsers(m)
	if len(users) == 0 {
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.Username,
			cli.FormatQuantity(u.Requests),
			cli.FormatNumber(int64(u.Models)),
			cli.FormatPercent(u.Share),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "User Activity",
		Headers: []string{"User", "AI Tokens Used", "Models Used", "% of Total Usage"},
		Rows:    rows,
	}))
	fmt.Println()
}

func renderMethodology(a *analysis) {
	m := a.Metrics
	fmt.Printf("  Methodology: %d seats × %d premium requests × %d minutes per request = %s total minutes (%s hours) at $%s/hour developer rate.\n\n",
		m.TotalSeats, pipeline.MonthlyQuotaPerSeat, pipeline.MinutesPerRequest,
		cli.FormatQuantity(a.Capacity.TotalMinutes),
		cli.FormatHours0(a.Capacity.TotalHours),
		cli.FormatRate(a.Rate),
	)
}

// recordRun appends this analysis to the history database. History is a
// convenience; failures only warn.
func recordRun(a *analysis) {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  History unavailable: %v\n", err)
		}
		return
	}
	defer func() { _ = h.Close() }()

	if err := h.SaveRun(a.Metrics, a.Rate, a.ReportPath, a.CapacityOnly); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  History write failed: %v\n", err)
	}
}

// jsonReport is the machine-readable analysis shape.
type jsonReport struct {
	CapacityOnly bool    `json:"capacity_only"`
	TotalSeats   int     `json:"total_seats"`
	HourlyRate   float64 `json:"hourly_rate"`

	TotalRequests            float64 `json:"total_requests"`
	TotalCost                float64 `json:"total_cost"`
	ActiveUsers              int     `json:"active_users"`
	UnusedSeats              int     `json:"unused_seats"`
	AdoptionRate             float64 `json:"adoption_rate"`
	QuotaUsagePercent        float64 `json:"quota_usage_percent"`
	AvgRequestsPerUser       float64 `json:"avg_requests_per_user"`
	AvgCostPerUser           float64 `json:"avg_cost_per_user"`
	AvgRequestsPerActiveUser float64 `json:"avg_requests_per_active_user"`
	AvgCostPerActiveUser     float64 `json:"avg_cost_per_active_user"`
	CodeReviewRequests       float64 `json:"code_review_requests"`
	CodingAgentRequests      float64 `json:"coding_agent_requests"`

	Users    []jsonUser            `json:"users"`
	Models   []jsonModel           `json:"models"`
	Daily    []pipeline.DailyPoint `json:"daily"`
	Capacity model.Capacity        `json:"capacity"`
	Insights []model.Insight       `json:"insights"`
}

type jsonUser struct {
	Username string  `json:"username"`
	Requests float64 `json:"requests"`
	Cost     float64 `json:"cost"`
	Models   int     `json:"models"`
	Share    float64 `json:"share_percent"`
}

type jsonModel struct {
	Model    string  `json:"model"`
	Requests float64 `json:"requests"`
	Cost     float64 `json:"cost"`
	Share    float64 `json:"share_percent"`
}

func writeJSON(w io.Writer, a *analysis) error {
	m := a.Metrics

	out := jsonReport{
		CapacityOnly:             a.CapacityOnly,
		TotalSeats:               m.TotalSeats,
		HourlyRate:               a.Rate,
		TotalRequests:            m.TotalRequests,
		TotalCost:                m.TotalCost,
		ActiveUsers:              m.ActiveUsers,
		UnusedSeats:              m.UnusedSeats,
		AdoptionRate:             m.AdoptionRate,
		QuotaUsagePercent:        m.QuotaUsagePercent,
		AvgRequestsPerUser:       m.AvgRequestsPerUser,
		AvgCostPerUser:           m.AvgCostPerUser,
		AvgRequestsPerActiveUser: m.AvgRequestsPerActiveUser,
		AvgCostPerActiveUser:     m.AvgCostPerActiveUser,
		CodeReviewRequests:       m.CodeReviewRequests,
		CodingAgentRequests:      m.CodingAgentRequests,
		Daily:                    pipeline.DailySeries(m),
		Capacity:                 a.Capacity,
		Insights:                 a.Insights,
	}

	for _, u := range pipeline.RankedUsers(m) {
		out.Users = append(out.Users, jsonUser{
			Username: u.Username, Requests: u.Requests, Cost: u.Cost,
			Models: u.Models, Share: u.Share,
		})
	}
	for _, mr := range pipeline.RankedModels(m) {
		out.Models = append(out.Models, jsonModel{
			Model: mr.Model, Requests: mr.Requests, Cost: mr.Cost, Share: mr.Share,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
