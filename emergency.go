package medassist

import "strings"

// defaultEmergencyKeywords are phrases that warrant an immediate
// emergency banner. Matching is case-insensitive substring; this is a
// shallow keyword scan, not a medical judgment.
var defaultEmergencyKeywords = []string{
	"chest pain", "heart attack", "can't breathe", "cannot breathe",
	"difficulty breathing", "stroke", "unconscious", "unresponsive",
	"severe bleeding", "overdose", "suicide", "kill myself",
	"not breathing", "seizure", "anaphylaxis",
}

// EmergencyDetector flags raw input text that mentions a medical
// emergency. It only gates a UI warning banner; it never blocks or
// alters the gateway call.
type EmergencyDetector struct {
	keywords []string
}

// NewEmergencyDetector creates a detector. With no arguments it uses the
// built-in phrase list; otherwise the given keywords replace it.
func NewEmergencyDetector(keywords ...string) *EmergencyDetector {
	if len(keywords) == 0 {
		keywords = defaultEmergencyKeywords
	}
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &EmergencyDetector{keywords: lowered}
}

// Detect reports whether text contains any emergency phrase.
func (d *EmergencyDetector) Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range d.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
