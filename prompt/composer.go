// Package prompt builds qq's system prompts: placeholder substitution
// over the explain/generate templates using a snapshot of runtime facts.
package prompt

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// placeholderPrefix marks substitution points; a template references a
// snapshot key k as ":r:k".
const placeholderPrefix = ":r:"

// Snapshot maps placeholder names to runtime facts. Computed once at
// startup and immutable afterwards.
type Snapshot map[string]string

// Imbue substitutes snapshot values into the template. Only the FIRST
// occurrence of each placeholder is replaced; repeated occurrences stay
// literal. Placeholders with no snapshot entry are left verbatim and no
// error is raised. Pure function.
func Imbue(template string, info Snapshot) string {
	for key, value := range info {
		template = strings.Replace(template, placeholderPrefix+key, value, 1)
	}
	return template
}

// SupportsColor reports whether colored output should be produced:
// the toggle must be on and stdout must be a terminal.
func SupportsColor(enabled bool) bool {
	if !enabled {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CollectSystemInfo gathers the generate-mode snapshot. When env is
// false, every environment-derived fact reads "Unknown"; color support
// is always reported truthfully since the model must not emit color
// codes a non-color terminal cannot render.
func CollectSystemInfo(env bool, color bool) Snapshot {
	info := Snapshot{
		"os":         runtime.GOOS,
		"os_version": osVersion(),
		"shell":      envOr("SHELL", "Unknown"),
		"user":       envOr("USER", "Unknown"),
		"home":       envOr("HOME", "Unknown"),
	}
	if !env {
		for k := range info {
			info[k] = "Unknown"
		}
	}

	info["color_support"] = colorWord(SupportsColor(color))
	return info
}

// ExplainSnapshot gathers the explain-mode snapshot, which only carries
// color support.
func ExplainSnapshot(color bool) Snapshot {
	return Snapshot{"color_support": colorWord(SupportsColor(color))}
}

func colorWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
