package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/nusui/internal/catalog"
	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/locale"
	"github.com/akyairhashvil/nusui/internal/tui"
	"github.com/akyairhashvil/nusui/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "This application requires an interactive terminal.")
		os.Exit(1)
	}

	if theme := strings.TrimSpace(os.Getenv("NUSUI_THEME")); theme != "" {
		tui.SetTheme(theme)
	}

	if os.Getenv("NUSUI_DEBUG") != "" {
		logRoot := util.DataDir(config.AppName)
		_ = os.MkdirAll(logRoot, 0o755)
		f, err := tea.LogToFile(filepath.Join(logRoot, "debug.log"), "debug")
		if err == nil {
			defer f.Close()
		} else {
			util.LogError("debug log", err)
		}
	}

	model := tui.NewMainModel(catalog.Default()).WithLocale(detectLocale())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// detectLocale picks the startup language from NUSUI_LANG, falling
// back to the system LANG. Anything not Spanish starts in English.
func detectLocale() locale.Locale {
	lang := strings.TrimSpace(os.Getenv("NUSUI_LANG"))
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if strings.HasPrefix(strings.ToLower(lang), "es") {
		return locale.ES
	}
	return locale.EN
}
