// ABOUTME: Component debug logging compiled only with -tags debug
// ABOUTME: KARA_DEBUG selects components, "all" or "*" enables everything

//go:build debug
// +build debug

package debug

import (
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	logger = log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime|log.Lshortfile)

	// EnabledComponents holds the component names selected via KARA_DEBUG,
	// e.g. KARA_DEBUG=scan,accessor_cache.
	EnabledComponents = make(map[string]bool)
)

func init() {
	env := os.Getenv("KARA_DEBUG")
	if env == "" {
		return
	}
	if env == "all" || env == "*" {
		EnabledComponents["*"] = true
		return
	}
	for _, comp := range strings.Split(env, ",") {
		EnabledComponents[strings.TrimSpace(comp)] = true
	}
}

// Printf logs a formatted message when the component is enabled.
func Printf(component, format string, args ...interface{}) {
	if !isEnabled(component) {
		return
	}
	logger.Output(2, fmt.Sprintf("[%s] "+format, append([]interface{}{component}, args...)...))
}

// Println logs a message when the component is enabled.
func Println(component string, args ...interface{}) {
	if !isEnabled(component) {
		return
	}
	logger.Output(2, fmt.Sprintln(append([]interface{}{"[" + component + "]"}, args...)...))
}

func isEnabled(component string) bool {
	return EnabledComponents["*"] || EnabledComponents["all"] || EnabledComponents[component]
}

// SetLogger replaces the destination logger.
func SetLogger(l *log.Logger) {
	logger = l
}
