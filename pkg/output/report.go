package output

import (
	"fmt"

	"syshealth/pkg/health"
)

// RenderVerdict closes the run. The score line and its tier message are
// console-only, rendered in the tier's style; the log gets one combined
// final line. This is the only place the score is consumed as a single
// value.
func RenderVerdict(c *Console, score int, logPath string) {
	c.Section("System Health Report")

	verdict := health.VerdictFor(score)
	scoreLine := fmt.Sprintf("🩺 System Health Score: %d%%", score)
	msg := verdict.Message()

	switch verdict {
	case health.VerdictGood:
		fmt.Fprintln(c.out, successStyle.Render(scoreLine))
		fmt.Fprintln(c.out, "✅ "+msg)
	case health.VerdictAttention:
		fmt.Fprintln(c.out, warnStyle.Render(scoreLine))
		fmt.Fprintln(c.out, "⚠️  "+msg)
	default:
		fmt.Fprintln(c.out, errorStyle.Render(scoreLine))
		fmt.Fprintln(c.out, "❌ "+msg)
	}
	if logPath != "" {
		fmt.Fprintln(c.out, dimStyle.Render("Full report saved to "+logPath))
	}

	c.log.Infof("Final health score: %d%% - %s", score, msg)
}
