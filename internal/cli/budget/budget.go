// Package budget implements the "adflow budget" commands.
package budget

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/analytics"
	"github.com/thenoetrevino/adflow/internal/cli/styles"
	"github.com/thenoetrevino/adflow/internal/models"
	budgetservice "github.com/thenoetrevino/adflow/internal/services/budget"
)

// BudgetCmd returns the budget parent command
func BudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage branch ad budgets",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(StatsCmd())

	return cmd
}

func printBudgets(w io.Writer, budgets []models.Budget) {
	if len(budgets) == 0 {
		fmt.Fprintln(w, "No budgets found")
		return
	}
	t := styles.Table("ID", "Name", "Branch", "Status", "Total", "Spent", "Remaining", "Used")
	for _, b := range budgets {
		t.Row(b.ID, b.Name, b.Branch, b.Status,
			analytics.Currency(b.TotalBudget),
			analytics.Currency(b.Spent),
			analytics.Currency(b.Remaining()),
			fmt.Sprintf("%.0f%%", b.Utilisation()*100))
	}
	fmt.Fprintln(w, t.Render())
}

func printStats(w io.Writer, st budgetservice.Stats) {
	fmt.Fprintln(w, styles.TitleStyle.Render("Budget overview"))
	fmt.Fprintln(w, styles.Field("Budgets", fmt.Sprint(st.Count)))
	fmt.Fprintln(w, styles.Field("Allocated", analytics.Currency(st.Total)))
	fmt.Fprintln(w, styles.Field("Spent", analytics.Currency(st.Spent)))
	fmt.Fprintln(w, styles.Field("Remaining", analytics.Currency(st.Remaining)))
	fmt.Fprintln(w, styles.Field("Daily (live)", analytics.Currency(st.Daily)))

	if len(st.SpentByBranch) == 0 {
		return
	}
	branches := make([]string, 0, len(st.SpentByBranch))
	for branch := range st.SpentByBranch {
		branches = append(branches, branch)
	}
	sort.Strings(branches)

	fmt.Fprintln(w, styles.SectionStyle.Render("Spent by branch"))
	for _, branch := range branches {
		fmt.Fprintln(w, styles.Field(branch, analytics.Currency(st.SpentByBranch[branch])))
	}
}
