package app

import (
	"log"
	"os/exec"
	"runtime"
	"strings"

	"github.com/appengine-ltd/chatpane/internal/chatpane"
)

// linkOpener builds the pane's link sink. An explicit command from config
// wins; otherwise the platform opener is used. Only web URLs are ever passed
// to a subprocess.
func linkOpener(command string, verbose bool) chatpane.LinkSink {
	return func(url string) {
		if !strings.HasPrefix(url, "http:") && !strings.HasPrefix(url, "https:") {
			return
		}
		name, args := openerCommand(command, url)
		if err := exec.Command(name, args...).Start(); err != nil {
			log.Printf("open %s: %v", url, err)
			return
		}
		if verbose {
			log.Printf("opened %s via %s", url, name)
		}
	}
}

func openerCommand(command, url string) (string, []string) {
	if command != "" {
		return command, []string{url}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
