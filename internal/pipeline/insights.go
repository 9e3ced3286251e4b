package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/model"
)

// insightInput carries everything the rule evaluators may read.
type insightInput struct {
	m    model.Metrics
	rate float64
}

// rule pairs a predicate with a formatter. Rules are evaluated in slice
// order and that order is the display order; a nil predicate always fires.
type rule struct {
	applies func(in insightInput) bool
	build   func(in insightInput) model.Insight
}

// Generate produces the ordered insight sequence for a snapshot.
//
// In capacity-only mode the four fixed capacity insights are returned,
// computed from seats and rate alone. Otherwise the usage rules run in their
// fixed order, each conditionally included. Output is deterministic for
// given inputs.
func Generate(m model.Metrics, hourlyRate float64, capacityOnly bool) []model.Insight {
	in := insightInput{m: m, rate: hourlyRate}

	rules := usageRules
	if capacityOnly {
		rules = capacityRules
	}

	var insights []model.Insight
	for _, r := range rules {
		if r.applies != nil && !r.applies(in) {
			continue
		}
		insights = append(insights, r.build(in))
	}
	return insights
}

var capacityRules = []rule{
	{build: capacityOverview},
	{build: enablePremium},
	{build: potentialROI},
	{build: nextSteps},
}

var usageRules = []rule{
	{build: adoptionTier},
	{build: utilizationTier},
	{
		applies: func(in insightInput) bool { return len(in.m.ModelStats) > 0 },
		build:   modelDiversity,
	},
	{
		applies: func(in insightInput) bool {
			if in.m.TotalRequests == 0 {
				return false
			}
			return concentrationPercent(in.m) > 60
		},
		build: usageConcentration,
	},
	{build: productivityImpact},
	{
		applies: func(in insightInput) bool { return unusedQuota(in.m) > 0 },
		build:   maximizeTokens,
	},
	{
		applies: func(in insightInput) bool { return in.m.CodeReviewRequests > 0 },
		build:   codeReviewUsage,
	},
	{
		applies: func(in insightInput) bool { return in.m.CodingAgentRequests > 0 },
		build:   codingAgentUsage,
	},
	{
		applies: func(in insightInput) bool { return in.m.CodeReviewRequests == 0 },
		build:   codeReviewAvailable,
	},
	{
		applies: func(in insightInput) bool { return in.m.CodingAgentRequests == 0 },
		build:   codingAgentAvailable,
	},
}

// capacityHours is the monthly opportunity in hours for the snapshot's seats.
func capacityHours(m model.Metrics) float64 {
	return float64(m.TotalSeats) * MonthlyQuotaPerSeat * MinutesPerRequest / 60
}

func unusedQuota(m model.Metrics) float64 {
	return float64(m.TotalSeats)*MonthlyQuotaPerSeat - m.TotalRequests
}

func concentrationPercent(m model.Metrics) float64 {
	var sum float64
	for _, u := range TopUsers(m, 3) {
		sum += u.Requests
	}
	return sum / m.TotalRequests * 100
}

func capacityOverview(in insightInput) model.Insight {
	return model.Insight{
		Title: "Capacity-Only Analysis",
		Text: fmt.Sprintf(
			"This analysis shows your total available AI capacity without usage data. You have %d Copilot Premium seats, representing %s hours of potential AI-assisted development time per month.",
			in.m.TotalSeats, cli.FormatHours0(capacityHours(in.m)),
		),
	}
}

func enablePremium(insightInput) model.Insight {
	return model.Insight{
		Title: "Enable Premium Features",
		Text:  "To unlock this capacity, ensure premium features are enabled in your GitHub organization settings. Each developer should have access to Copilot Chat and premium AI models (GPT-4, Claude 3.5 Sonnet, etc.) in their IDE.",
	}
}

func potentialROI(in insightInput) model.Insight {
	return model.Insight{
		Title: "Potential ROI",
		Text: fmt.Sprintf(
			"At an average developer rate of $%s/hr, your %d Premium seats represent approximately $%s in monthly productivity capacity. This is the value you've pre-paid for that could be unlocked through adoption.",
			cli.FormatRate(in.rate), in.m.TotalSeats, cli.FormatQuantity(capacityHours(in.m)*in.rate),
		),
	}
}

func nextSteps(insightInput) model.Insight {
	return model.Insight{
		Title: "Next Steps",
		Text:  "Once premium features are enabled and developers start using them, upload a Premium Request Usage Report CSV to see actual adoption rates, token utilization, model preferences, and identify power users who can evangelize AI pair programming benefits.",
	}
}

// adoptionTier always emits exactly one of three variants. Boundaries go to
// the higher tier: exactly 30 is moderate, exactly 60 is strong.
func adoptionTier(in insightInput) model.Insight {
	m := in.m
	switch {
	case m.AdoptionRate < 30:
		return model.Insight{
			Title: "Low Adoption Rate",
			Text: fmt.Sprintf(
				"Only %s%% of your team (%d out of %d seats) is using premium features. Consider training sessions or communications to increase awareness and adoption. You have %d unused licenses representing untapped potential.",
				cli.FormatPercent1(m.AdoptionRate), m.ActiveUsers, m.TotalSeats, m.UnusedSeats,
			),
		}
	case m.AdoptionRate < 60:
		return model.Insight{
			Title: "Moderate Adoption",
			Text: fmt.Sprintf(
				"%s%% adoption rate (%d of %d seats) shows growing interest. Focus on power users to evangelize benefits and share best practices with the remaining %d license holders.",
				cli.FormatPercent1(m.AdoptionRate), m.ActiveUsers, m.TotalSeats, m.UnusedSeats,
			),
		}
	default:
		return model.Insight{
			Title: "Strong Adoption",
			Text: fmt.Sprintf(
				"Excellent! %s%% of licenses (%d of %d seats) are actively used. This indicates strong value recognition across the team.",
				cli.FormatPercent1(m.AdoptionRate), m.ActiveUsers, m.TotalSeats,
			),
		}
	}
}

// utilizationTier always emits exactly one of three variants. Unlike the
// adoption tiers, the boundaries here fall into the middle branch: exactly
// 20 and exactly 80 are both moderate.
func utilizationTier(in insightInput) model.Insight {
	m := in.m
	totalQuota := m.TotalSeats * MonthlyQuotaPerSeat
	switch {
	case m.QuotaUsagePercent < 20:
		return model.Insight{
			Title: "Low AI Usage",
			Text: fmt.Sprintf(
				"Only %s%% of available AI tokens are being used (%s of %d total tokens across all seats). This indicates significant unused capacity. Active users may benefit from training on advanced features, or non-active users need onboarding.",
				cli.FormatPercent1(m.QuotaUsagePercent), cli.FormatPlain(m.TotalRequests), totalQuota,
			),
		}
	case m.QuotaUsagePercent > 80:
		return model.Insight{
			Title: "High AI Usage",
			Text: fmt.Sprintf(
				"%s%% token utilization across all seats indicates power users are maximizing their AI capabilities. Monitor for users approaching limits and consider this strong engagement in ROI calculations.",
				cli.FormatPercent1(m.QuotaUsagePercent),
			),
		}
	default:
		return model.Insight{
			Title: "Moderate AI Usage",
			Text: fmt.Sprintf(
				"%s%% of available tokens are being used (%s of %d tokens). There's room for growth, especially among the %d inactive seats.",
				cli.FormatPercent1(m.QuotaUsagePercent), cli.FormatPlain(m.TotalRequests), totalQuota, m.UnusedSeats,
			),
		}
	}
}

func modelDiversity(in insightInput) model.Insight {
	m := in.m
	top, _ := TopModel(m)
	var share float64
	if m.TotalRequests > 0 {
		share = m.ModelStats[top].Requests / m.TotalRequests * 100
	}
	return model.Insight{
		Title: "Model Usage Patterns",
		Text: fmt.Sprintf(
			"Team is using %d different AI models. %s is the most popular with %s%% of token usage. Diverse model usage indicates users are experimenting with different capabilities.",
			len(m.ModelStats), top, cli.FormatPercent1(share),
		),
	}
}

func usageConcentration(in insightInput) model.Insight {
	m := in.m
	top := TopUsers(m, 3)
	names := make([]string, 0, len(top))
	for _, u := range top {
		names = append(names, u.Username)
	}
	return model.Insight{
		Title: "Usage Concentration",
		Text: fmt.Sprintf(
			"Top 3 users (%s) account for %s%% of AI token usage. Consider having these power users share their workflows and use cases to boost adoption among the other %d seats.",
			strings.Join(names, ", "), cli.FormatPercent1(concentrationPercent(m)), m.TotalSeats-3,
		),
	}
}

func productivityImpact(in insightInput) model.Insight {
	m := in.m
	savedMinutes := m.TotalRequests * MinutesSavedPerRequest
	savedHours := savedMinutes / 60
	dollarValue := savedHours * in.rate

	var text string
	if m.TotalCost > 0 {
		returnMultiple := dollarValue / m.TotalCost
		text = fmt.Sprintf(
			"With %s AI tokens used, your team potentially saved ~%s hours of development time this month. At an average developer rate of $%s/hr, that's approximately $%s in productivity value generated from a $%s usage cost (%sx return on incremental usage costs).",
			cli.FormatQuantity(m.TotalRequests), cli.FormatHours0(savedHours),
			cli.FormatRate(in.rate), cli.FormatMoney0(dollarValue),
			cli.FormatMoney2(m.TotalCost), strconv.FormatFloat(returnMultiple, 'f', 1, 64),
		)
	} else {
		text = fmt.Sprintf(
			"With %s AI tokens used, your team potentially saved ~%s hours of development time this month. At an average developer rate of $%s/hr, that's approximately $%s in productivity value generated. Premium tokens are included in your license cost, making this additional value with no incremental usage fees.",
			cli.FormatQuantity(m.TotalRequests), cli.FormatHours0(savedHours),
			cli.FormatRate(in.rate), cli.FormatMoney0(dollarValue),
		)
	}

	return model.Insight{Title: "Estimated Productivity Impact", Text: text}
}

func maximizeTokens(in insightInput) model.Insight {
	m := in.m
	totalQuota := float64(m.TotalSeats) * MonthlyQuotaPerSeat
	return model.Insight{
		Title: "Maximize Token Usage",
		Text: fmt.Sprintf(
			"Your team has %s hours of unused AI tokens out of %s hours available this month. These tokens reset monthly and cannot be carried forward. Encourage active users to leverage AI capabilities more frequently, and ensure inactive team members receive training and onboarding to utilize their allocated tokens before they expire.",
			cli.FormatHours0(unusedQuota(m)/60), cli.FormatHours0(totalQuota/60),
		),
	}
}

func codeReviewUsage(in insightInput) model.Insight {
	count := in.m.CodeReviewRequests
	return model.Insight{
		Title: "Code Review Agent Usage",
		Text: fmt.Sprintf(
			"Your team used %s automated code review%s this period. This AI-powered PR analysis helps catch security vulnerabilities, bugs, and standards violations that human reviewers might miss, allowing engineers to focus on complex logic and architecture.",
			cli.FormatPlain(count), plural(count),
		),
	}
}

func codingAgentUsage(in insightInput) model.Insight {
	count := in.m.CodingAgentRequests
	return model.Insight{
		Title: "Coding Agent Deployment",
		Text: fmt.Sprintf(
			"Excellent! Your team deployed %s coding agent session%s this period. These autonomous agents handle routine tasks (bug fixes, tests, documentation) in parallel while your engineers focus on complex features, effectively expanding team capacity.",
			cli.FormatPlain(count), plural(count),
		),
	}
}

func codeReviewAvailable(insightInput) model.Insight {
	return model.Insight{
		Title: "Code Review Agent Available",
		Text:  "Enable automated code reviews to improve quality assurance. AI-powered PR analysis catches security issues, bugs, and standards violations, complementing human reviewers. Uses 1 premium request per review from your existing quota.",
	}
}

func codingAgentAvailable(insightInput) model.Insight {
	return model.Insight{
		Title: "Coding Agent Available",
		Text:  "Deploy autonomous coding agents to expand development capacity. Assign routine tasks (bug fixes, tests, documentation) to AI agents that work in parallel with your team, freeing engineers for complex work. Uses 1 premium request per session from your existing quota.",
	}
}

func plural(count float64) string {
	if count > 1 {
		return "s"
	}
	return ""
}
