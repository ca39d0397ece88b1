package records

import (
	"fmt"
	"strings"
)

type Eye string

const (
	EyeLeft  Eye = "left"
	EyeRight Eye = "right"
)

// ParseEye accepts "left"/"right" in any case, plus "L"/"R".
func ParseEye(value string) (Eye, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "l":
		return EyeLeft, true
	case "right", "r":
		return EyeRight, true
	}
	return "", false
}

func (e Eye) Title() string {
	if e == EyeRight {
		return "Right"
	}
	return "Left"
}

type GradeKind string

const (
	GradeKindNone  GradeKind = "none"
	GradeKindGrade GradeKind = "grade"
	GradeKindTypes GradeKind = "types"
)

// GradePresentation is what a display shows for one eye: nothing, the scalar
// grade, or the list of cataract types.
type GradePresentation struct {
	Eye   Eye       `json:"eye"`
	Kind  GradeKind `json:"kind"`
	Grade string    `json:"grade,omitempty"`
	Types []string  `json:"types,omitempty"`
}

// PresentGrade decides how an eye's grading is displayed. Nothing is shown
// unless the eye has both a grade and cataract types. The grade itself is
// shown only when it equals the type list, which for a list of tags means a
// single tag with the same text; every other record shows its types.
//
// The grade branch is almost never taken with current producers. Whether the
// grade should be shown whenever it is set is an open product question.
func PresentGrade(record PatientRecord, eye Eye) GradePresentation {
	grade, types := record.GradeLeft, record.LeftEyeCataractTypes
	if eye == EyeRight {
		grade, types = record.GradeRight, record.RightEyeCataractTypes
	}

	if grade == "" || len(types) == 0 {
		return GradePresentation{Eye: eye, Kind: GradeKindNone}
	}
	if gradeEqualsTypes(grade, types) {
		return GradePresentation{Eye: eye, Kind: GradeKindGrade, Grade: grade}
	}
	return GradePresentation{Eye: eye, Kind: GradeKindTypes, Types: cloneTags(types)}
}

func gradeEqualsTypes(grade string, types []string) bool {
	return len(types) == 1 && types[0] == grade
}

// Display is the text shown next to the label.
func (p GradePresentation) Display() string {
	switch p.Kind {
	case GradeKindGrade:
		return p.Grade
	case GradeKindTypes:
		return strings.Join(p.Types, ", ")
	}
	return ""
}

func (p GradePresentation) Label() string {
	switch p.Kind {
	case GradeKindGrade:
		return fmt.Sprintf("Grade (%s Eye)", p.Eye.Title())
	case GradeKindTypes:
		return fmt.Sprintf("Cataract (%s Eye)", p.Eye.Title())
	}
	return ""
}

func (p GradePresentation) Shown() bool {
	return p.Kind != GradeKindNone
}
