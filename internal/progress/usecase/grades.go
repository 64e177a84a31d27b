package usecase

import (
	"math"
	"strings"
)

const failingGrade = "F"

var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.5,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.5,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.5,
	"D":  1.0,
	"F":  0.0,
}

func normalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// points returns the grade points of a letter grade.
func points(grade string) (float64, bool) {
	p, ok := gradePoints[normalizeGrade(grade)]
	return p, ok
}

func isPassing(grade string) bool {
	return normalizeGrade(grade) != failingGrade
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
