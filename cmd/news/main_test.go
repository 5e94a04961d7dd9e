package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	versionCmd.Run(nil, nil)

	w.Close()
	os.Stdout = old
	out := <-outC

	if !strings.Contains(out, "tidings dev") {
		t.Errorf("Expected version output to contain 'tidings dev', got: %s", out)
	}
	if !strings.Contains(out, "Terminal news reader") {
		t.Errorf("Expected version output to contain 'Terminal news reader', got: %s", out)
	}
	if !strings.Contains(out, "github.com/hnrks/tidings") {
		t.Errorf("Expected version output to contain module path, got: %s", out)
	}
}

func TestRootCommand_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("root command should expose --config")
	}
	for _, name := range []string{"log-level", "generate-config", "quiet"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command should expose --%s", name)
		}
	}
}
