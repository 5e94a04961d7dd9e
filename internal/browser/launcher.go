// Package browser opens article URLs in the user's browser via a
// platform opener command.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/debuglog"
)

type Launcher struct {
	opener        string
	defaultOpener string
}

func NewLauncher(cfg *config.Config) *Launcher {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = cfg.Browser.Darwin
	case "linux":
		candidates = cfg.Browser.Linux
	case "windows":
		candidates = cfg.Browser.Windows
	default:
		candidates = cfg.Browser.Linux
	}

	l := &Launcher{defaultOpener: cfg.Browser.DefaultOpener}
	l.opener = findCommand(candidates...)
	if l.opener == "" {
		l.opener = l.defaultOpener
	}

	return l
}

// Open launches the opener with the given URL. Only http(s) URLs are
// accepted; anything else is refused rather than handed to a shell.
func (l *Launcher) Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", url)
	}
	if l.opener == "" {
		return fmt.Errorf("no browser opener found")
	}

	debuglog.Infof("opening %s with %s", url, l.opener)

	cmd := exec.Command(l.opener, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", l.opener, err)
	}

	// Detach; the browser outlives us and we never wait on it.
	go func() { _ = cmd.Wait() }()

	return nil
}

// findCommand returns the first candidate present on PATH.
func findCommand(candidates ...string) string {
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}
