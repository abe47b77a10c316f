package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/billion-tapper/internal/application"
	"github.com/bnema/billion-tapper/internal/domain"
)

// RenderRuns renders the reports of a finished run.
func RenderRuns(reports []application.RunReport) (string, error) {
	return run(func(s styles) string { return runsView(reports, s) })
}

// RenderAccounts renders the configured accounts.
func RenderAccounts(accounts []application.AccountSummary) (string, error) {
	return run(func(s styles) string { return accountsView(accounts, s) })
}

func runsView(reports []application.RunReport, s styles) string {
	var earned int64
	for _, r := range reports {
		earned += r.SecondsEarned
	}

	lines := []string{
		s.title.Render("Run summary"),
		s.header.Render(fmt.Sprintf("accounts: %d | earned: +%s", len(reports), formatSeconds(earned))),
	}
	if len(reports) == 0 {
		lines = append(lines, s.empty.Render("No accounts ran."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, r := range reports {
		lines = append(lines, s.section.Render(runView(r, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func runView(r application.RunReport, s styles) string {
	parts := []string{
		s.account.Render(fmt.Sprintf("%s (%s)", r.Session, r.Account)),
		field(s, "state", stateStyle(r.FinalState, s).Render(string(r.FinalState))+s.value.Render(fmt.Sprintf(" | cycles: %d", r.Cycles))),
		field(s, "tasks", s.value.Render(fmt.Sprintf("%d completed, %d failed, %d skipped | earned: +%s",
			r.TasksCompleted, r.TasksFailed, r.TasksSkipped, formatSeconds(r.SecondsEarned)))),
	}

	if r.HasBalance {
		balance := s.good.Render(formatSeconds(r.LastBalance) + " left")
		if r.LastBalance <= 0 {
			balance = s.fatal.Render("expired")
		}
		parts = append(parts, field(s, "balance", balance))
	}
	if !r.StartedAt.IsZero() && r.EndedAt.After(r.StartedAt) {
		parts = append(parts, field(s, "runtime", s.value.Render(formatSeconds(int64(r.EndedAt.Sub(r.StartedAt)/time.Second)))))
	}
	if r.Err != nil {
		style := s.warning
		if domain.IsFatal(r.Err) {
			style = s.fatal
		}
		parts = append(parts, field(s, "error", style.Render(r.Err.Error())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountsView(accounts []application.AccountSummary, s styles) string {
	lines := []string{
		s.title.Render("Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}
	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured. Add one with `bt account add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, a := range accounts {
		proxy := a.Proxy
		if proxy == "" {
			proxy = "direct"
		}
		auth := s.good.Render("configured")
		if !a.AuthConfigured {
			auth = s.warning.Render("missing")
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.account.Render(fmt.Sprintf("%s (%s)", a.SessionName, a.ID)),
			field(s, "proxy", s.value.Render(proxy)),
			field(s, "auth", auth),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(s styles, key string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+": "), value)
}

func stateStyle(state application.LoopState, s styles) lipgloss.Style {
	switch state {
	case application.StateTerminated:
		return s.fatal
	case application.StateStopped:
		return s.good
	default:
		return s.warning
	}
}

// formatSeconds renders a duration in seconds as "1d 2h 3m", falling back to
// seconds below a minute. Negative values keep their sign.
func formatSeconds(total int64) string {
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	if total < 60 {
		return fmt.Sprintf("%s%ds", sign, total)
	}

	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60

	var b strings.Builder
	b.WriteString(sign)
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if days > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	fmt.Fprintf(&b, "%dm", minutes)
	return b.String()
}
