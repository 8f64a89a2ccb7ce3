package utils

import (
	"log"
	"strings"
)

// LogEvent prints one key=value line tagged with module, action and
// request_id. Keep message short; never log patient documents or e-mails.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s %s", strings.ToUpper(module), action, req, message)
}
