package prefs

import (
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ThemeEnv forces the system theme when set to "light" or "dark".
const ThemeEnv = "TOOLBOX_THEME"

// DetectSystemTheme returns a SystemThemeFunc that asks the terminal for its
// background color. Terminals that do not answer within timeout, and outputs
// that are not terminals at all, report no preference.
func DetectSystemTheme(timeout time.Duration) SystemThemeFunc {
	return func() (Theme, bool) {
		if t, ok := ParseTheme(os.Getenv(ThemeEnv)); ok {
			return t, true
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return "", false
		}

		ch := make(chan Theme, 1)
		go func() {
			out := termenv.NewOutput(os.Stdout)
			if out.HasDarkBackground() {
				ch <- ThemeDark
				return
			}
			ch <- ThemeLight
		}()

		select {
		case t := <-ch:
			return t, true
		case <-time.After(timeout):
			return "", false
		}
	}
}
