package descparse

import (
	"regexp"
	"strings"

	"github.com/achrecon-dev/achrecon/internal/model"
)

// linePattern matches "<full name> (S<digits>)[C]:<date>:<date>". It is
// anchored at the start only; trailing text after the second date is ignored.
// The first date is the period start and is discarded; the second is the
// vector week ending.
var linePattern = regexp.MustCompile(`^(.+?) \((S\d+)\)\[C\]:(\d{4}-\d{2}-\d{2}):(\d{4}-\d{2}-\d{2})`)

// Parse extracts consultant fields from a line item description. Returns
// ok=false and a zero ParsedDescription when the description does not match;
// the parser never populates a subset of the fields.
func Parse(description string) (model.ParsedDescription, bool) {
	m := linePattern.FindStringSubmatch(description)
	if m == nil {
		return model.ParsedDescription{}, false
	}

	tokens := strings.Fields(m[1])
	if len(tokens) == 0 {
		return model.ParsedDescription{}, false
	}

	pd := model.ParsedDescription{
		FirstName:        tokens[0],
		CandidateID:      m[2],
		VectorWeekEnding: m[4],
	}
	if len(tokens) > 1 {
		pd.LastName = strings.Join(tokens[1:], " ")
	}
	return pd, true
}
