// Package docs renders the command reference of README.md from the registry.
package docs

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"emperror.dev/errors"

	"github.com/keshon/server-buddy/internal/version"
	"github.com/keshon/server-buddy/pkg/cmd"
)

//go:embed README.md.tmpl
var DefaultTemplate string

const (
	sectionEveryone   = "Everyone"
	sectionModerators = "Moderators"
)

// CommandSections lists the commands grouped by who may run them: first the
// ungated ones, then those behind a role.
func CommandSections(prefix string, commands []cmd.Command) string {
	var open, gated []cmd.Command
	for _, c := range commands {
		if c.RequiredRole() == "" {
			open = append(open, c)
		} else {
			gated = append(gated, c)
		}
	}

	var sb strings.Builder
	writeSection(&sb, sectionEveryone, prefix, open)
	writeSection(&sb, sectionModerators, prefix, gated)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeSection(sb *strings.Builder, title, prefix string, commands []cmd.Command) {
	if len(commands) == 0 {
		return
	}
	fmt.Fprintf(sb, "### %s\n\n", title)
	for _, c := range commands {
		fmt.Fprintf(sb, "- **`%s%s`** - %s", prefix, c.Name(), c.Description())
		if role := c.RequiredRole(); role != "" {
			fmt.Fprintf(sb, " _(role: %s)_", role)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// Render executes tmpl with the command sections of registry. An empty tmpl
// means DefaultTemplate.
func Render(w io.Writer, tmpl, prefix string, registry *cmd.Registry) error {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	t, err := template.New("readme").Parse(tmpl)
	if err != nil {
		return errors.Wrap(err, "parse readme template")
	}

	data := struct {
		AppName         string
		AppDescription  string
		Prefix          string
		CommandSections string
	}{
		AppName:         version.AppName,
		AppDescription:  version.AppDescription,
		Prefix:          prefix,
		CommandSections: CommandSections(prefix, registry.All()),
	}
	return errors.Wrap(t.Execute(w, data), "render readme")
}
