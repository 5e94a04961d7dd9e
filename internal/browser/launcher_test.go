package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnrks/tidings/internal/config"
)

func TestNewLauncher_FallsBackToDefaultOpener(t *testing.T) {
	cfg := config.TestConfig()
	cfg.Browser.Darwin = []string{"definitely-not-a-real-command"}
	cfg.Browser.Linux = []string{"definitely-not-a-real-command"}
	cfg.Browser.Windows = []string{"definitely-not-a-real-command"}
	cfg.Browser.DefaultOpener = "fallback-opener"

	l := NewLauncher(cfg)
	assert.Equal(t, "fallback-opener", l.opener)
}

func TestOpen_RejectsNonHTTPURLs(t *testing.T) {
	cfg := config.TestConfig()
	l := NewLauncher(cfg)

	for _, url := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "ftp://host/x"} {
		err := l.Open(url)
		assert.Error(t, err, "url %q must be refused", url)
	}
}

func TestOpen_NoOpenerConfigured(t *testing.T) {
	l := &Launcher{}
	err := l.Open("https://example.com/article")
	assert.Error(t, err)
}

func TestFindCommand(t *testing.T) {
	// Something from coreutils should exist on any test machine
	assert.NotEqual(t, "", findCommand("definitely-not-a-real-command", "ls"))
	assert.Equal(t, "", findCommand("definitely-not-a-real-command", ""))
}
