package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade identifies a fuel type by its octane number.
type Grade int

const (
	Grade80 Grade = 80
	Grade92 Grade = 92
	Grade95 Grade = 95
	Grade98 Grade = 98
)

// AllGrades lists the supported grades in ascending order.
var AllGrades = []Grade{Grade80, Grade92, Grade95, Grade98}

// validGrades is the fixed enumeration shared by ParseGrade and IsValid.
var validGrades = map[Grade]bool{Grade80: true, Grade92: true, Grade95: true, Grade98: true}

// gradePrefixes are the label prefixes accepted in front of the octane number.
// Upper-cased before matching; the Cyrillic form is what pump setup files use.
var gradePrefixes = []string{"АИ-", "AI-", "АИ", "AI"}

// IsValid reports whether g belongs to the fixed grade enumeration.
func (g Grade) IsValid() bool {
	return validGrades[g]
}

func (g Grade) String() string {
	return fmt.Sprintf("AI-%d", int(g))
}

// ParseGrade parses a grade label such as "92", "AI-92" or "АИ-92".
func ParseGrade(label string) (Grade, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	for _, p := range gradePrefixes {
		if strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			break
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid fuel grade %q", label)
	}
	g := Grade(n)
	if !g.IsValid() {
		return 0, fmt.Errorf("unknown fuel grade %q; valid: 80, 92, 95, 98", label)
	}
	return g, nil
}
