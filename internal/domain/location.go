package domain

import (
	"strconv"
	"strings"
)

// lineRange is an inclusive range of source lines in a file.
type lineRange struct {
	file  string
	start int
	end   int
}

func (r lineRange) contains(other lineRange) bool {
	return other.start >= r.start && other.end <= r.end
}

// parseMutantLocation parses the "file:startLine:endLine" form reported for
// mutants. ok is false for bare paths.
func parseMutantLocation(location string) (lineRange, bool) {
	return parseRange(location, ":")
}

// parseUnitLocation parses the "file-startLine-endLine" form configured on
// mutation units. ok is false for bare path prefixes.
func parseUnitLocation(location string) (lineRange, bool) {
	return parseRange(location, "-")
}

func parseRange(location, sep string) (lineRange, bool) {
	endIdx := strings.LastIndex(location, sep)
	if endIdx <= 0 {
		return lineRange{}, false
	}

	startIdx := strings.LastIndex(location[:endIdx], sep)
	if startIdx <= 0 {
		return lineRange{}, false
	}

	start, err := strconv.Atoi(location[startIdx+len(sep) : endIdx])
	if err != nil {
		return lineRange{}, false
	}

	end, err := strconv.Atoi(location[endIdx+len(sep):])
	if err != nil {
		return lineRange{}, false
	}

	return lineRange{file: location[:startIdx], start: start, end: end}, true
}

// MutantMatchesLocation reports whether a mutant at mutantLocation is
// attributed to the configured unit location.
//
// A mutant without a line range matches when its location starts with the
// unit location. A mutant with a line range matches a ranged unit location
// for the same file when its lines are fully contained in the unit's lines,
// and matches a bare unit location by path prefix.
func MutantMatchesLocation(mutantLocation, unitLocation string) bool {
	mutant, ranged := parseMutantLocation(mutantLocation)
	if !ranged {
		return strings.HasPrefix(mutantLocation, unitLocation)
	}

	unit, unitRanged := parseUnitLocation(unitLocation)
	if !unitRanged {
		return strings.HasPrefix(mutant.file, unitLocation)
	}

	return mutant.file == unit.file && unit.contains(mutant)
}

// matchesAnyLocation reports whether the mutant belongs to any of locations.
func matchesAnyLocation(mutantLocation string, locations []string) bool {
	for _, location := range locations {
		if MutantMatchesLocation(mutantLocation, location) {
			return true
		}
	}

	return false
}
