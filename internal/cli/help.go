package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// helpRule colors the help lines its pattern matches. Submatch 2 is
// highlighted when the pattern has groups, otherwise the whole line is styled.
type helpRule struct {
	re    *regexp.Regexp
	style func(string) string
}

var helpRules = []helpRule{
	// "Usage:", "Available Commands:", "Examples:"
	{regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`), Info},
	// Use "saanjha [command] --help" for more information about a command.
	{regexp.MustCompile(`^Use "`), Silent},
	// "  saanjha add ..." example lines
	{regexp.MustCompile(`^( {2})(saanjha .*)()$`), Silent},
	// "  -d, --date string   day of the entry"
	{regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`), Primary},
	// "  add         Add an event or task"
	{regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`), Primary},
}

// colorizedHelpFunc renders Cobra's usage text with the CLI palette.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(out)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		for i, line := range lines {
			lines[i] = colorizeLine(line)
		}
		cmd.Print(strings.Join(lines, "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, r := range helpRules {
		if r.re.NumSubexp() == 0 {
			if r.re.MatchString(trimmed) {
				return r.style(line)
			}
			continue
		}
		if m := r.re.FindStringSubmatch(line); m != nil {
			return m[1] + r.style(m[2]) + Text(m[3])
		}
	}
	return Text(line)
}
