package experian

import (
	"strings"

	"creditreportanalyser/internal/pkg/consts"
)

// IsExperianReport is the structural gate: a cheap substring check, not a
// schema validation. The document must contain the root marker and at least
// one of the required section tags. A document missing optional sections
// still passes; full extraction decides what it can recover.
func IsExperianReport(xmlText string) bool {
	if !strings.Contains(xmlText, consts.TagINProfileResponse) {
		return false
	}

	return strings.Contains(xmlText, consts.TagCreditProfileHeader) ||
		strings.Contains(xmlText, consts.TagCurrentApplication) ||
		strings.Contains(xmlText, consts.TagCAISAccount)
}
