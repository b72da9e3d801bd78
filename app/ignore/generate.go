package ignore

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

// Generate assembles the final file text around body. Unless override is set,
// the custom rules of the existing file at path are carried over verbatim
// (trimmed). The result always ends with a newline.
func (s *Service) Generate(path, body string, override bool) string {
	var b strings.Builder
	b.WriteString("# " + s.Settings.Banner + "\n")
	b.WriteString(body)
	b.WriteString("\n# " + s.Settings.UserRulesMarker + "\n")

	if !override {
		if rules, ok := s.UserRules(path); ok {
			cli.Debugf("keeping custom rules from %s:\n%s", path, rules)
			b.WriteString("\n" + rules)
		}
	}

	b.WriteString("\n")
	return b.String()
}
