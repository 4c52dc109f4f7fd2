package system

import (
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/stats"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type StatsCmd struct {
	Timer bool `help:"Only timer statistics."`
	Tasks bool `help:"Only task statistics."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()
	showTimer := c.Timer || !c.Tasks
	showTasks := c.Tasks || !c.Timer

	if showTimer {
		sessions, err := ctx.Store.GetAllSessions()
		if err != nil {
			return fmt.Errorf("failed to get sessions: %w", err)
		}

		s := stats.CalculateTimerStats(sessions, now)
		fmt.Println("Timer:")
		fmt.Printf("  Total sessions:      %d\n", s.TotalSessions)
		fmt.Printf("  Completed sessions:  %d\n", s.CompletedSessions)
		fmt.Printf("  Total focus time:    %s\n", utils.FormatDuration(s.TotalTime))
		fmt.Printf("  Average session:     %s\n", utils.FormatDuration(int(s.AverageSessionTime)))

		fmt.Println("  This week:")
		for _, day := range s.CurrentWeek {
			bar := ""
			for i := 0; i < day.Count; i++ {
				bar += "█"
			}
			fmt.Printf("    %s  %-10s %s\n", day.Date.Format("Mon"), utils.FormatDuration(day.TotalTime), bar)
		}
	}

	if showTasks {
		tasks, err := ctx.Store.GetAllTasks()
		if err != nil {
			return fmt.Errorf("failed to get tasks: %w", err)
		}

		s := stats.CalculateTaskStats(tasks, now)
		if showTimer {
			fmt.Println()
		}
		fmt.Println("Tasks:")
		fmt.Printf("  Total:      %d\n", s.TotalTasks)
		fmt.Printf("  Completed:  %d\n", s.CompletedTasks)
		fmt.Printf("  Overdue:    %d\n", s.OverdueTasks)

		if len(s.ByCategory) > 0 {
			fmt.Println("  By category:")
			for _, g := range s.ByCategory {
				fmt.Printf("    %-20s %d/%d\n", g.Key, g.Completed, g.Count)
			}
		}
		if len(s.ByPriority) > 0 {
			fmt.Println("  By priority:")
			for _, g := range s.ByPriority {
				fmt.Printf("    %-20s %d/%d\n", g.Key, g.Completed, g.Count)
			}
		}
	}

	return nil
}
