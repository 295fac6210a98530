package schedule

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Activity type labels.
const (
	ActivityLab              = "Lab"
	ActivityPBL              = "PBL"
	ActivityLecture          = "Lecture"
	ActivityRecordedLecture  = "Recorded Lecture"
	ActivityRecordedMaterial = "Recorded Material"
	ActivityTutorial         = "Tutorial"
	ActivitySelfStudy        = "Self-Study"
	ActivitySelfStudyCA      = "Self-Study / CA"
	ActivityPractical        = "Practical Session"
	ActivityReview           = "Review Session"
	ActivityGeneral          = "General Activity"
)

var (
	labKeywords       = []string{"מעבדה", "lab"}
	problemKeywords   = []string{"cbl", "pbl"}
	lectureKeywords   = []string{"הרצאה", "הרצאות", "lecture"}
	videoKeywords     = []string{"וידאו", "video"}
	tutorialKeywords  = []string{"תרגול", "tutorial"}
	recordedKeywords  = []string{"מוקלט", "מוקלטת", "recorded"}
	dissectionSubject = []string{"דיסקציה", "dissection"}
	dissectionRoom    = []string{"מעבדת דיסקציה", "dissection lab"}
	selfStudyRoom     = []string{"עבודה עצמית", "self study", "self-study"}
	reviewKeywords    = []string{"חזרה", "review"}
)

// classifyInput holds case-folded classifier inputs.
type classifyInput struct {
	subject  string
	location string
	hint     string
	words    map[string]bool
}

func newClassifyInput(subject, location, hint string) classifyInput {
	fold := cases.Fold()
	in := classifyInput{
		subject:  fold.String(strings.TrimSpace(subject)),
		location: fold.String(strings.TrimSpace(location)),
		hint:     fold.String(strings.TrimSpace(hint)),
		words:    make(map[string]bool),
	}
	for _, w := range strings.FieldsFunc(in.subject, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		in.words[w] = true
	}
	return in
}

func (in classifyInput) subjectHas(keywords ...string) bool { return containsAny(in.subject, keywords) }

func (in classifyInput) locationHas(keywords ...string) bool {
	return containsAny(in.location, keywords)
}

// subjectWord matches short acronyms as whole words only.
func (in classifyInput) subjectWord(word string) bool { return in.words[word] }

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

type activityRule struct {
	label string
	match func(in classifyInput) bool
}

// hintRules are consulted first, in order, when a type hint is present.
var hintRules = []activityRule{
	{ActivityLab, func(in classifyInput) bool { return containsAny(in.hint, labKeywords) }},
	{ActivityPBL, func(in classifyInput) bool { return containsAny(in.hint, problemKeywords) }},
	{ActivityLecture, func(in classifyInput) bool { return containsAny(in.hint, lectureKeywords) }},
	{ActivityRecordedMaterial, func(in classifyInput) bool { return containsAny(in.hint, videoKeywords) }},
	{ActivityTutorial, func(in classifyInput) bool { return containsAny(in.hint, tutorialKeywords) }},
}

// contentRules inspect subject, then location. Order is significant.
var contentRules = []activityRule{
	{ActivityRecordedLecture, func(in classifyInput) bool {
		return in.subjectHas(lectureKeywords...) && (in.subjectHas(recordedKeywords...) || in.locationHas(recordedKeywords...))
	}},
	{ActivityLecture, func(in classifyInput) bool { return in.subjectHas(lectureKeywords...) }},
	{ActivityLab, func(in classifyInput) bool {
		return in.subjectHas(dissectionSubject...) || in.locationHas(dissectionRoom...)
	}},
	{ActivityPBL, func(in classifyInput) bool { return in.subjectWord("pbl") }},
	{ActivitySelfStudy, func(in classifyInput) bool { return in.locationHas(selfStudyRoom...) }},
	{ActivitySelfStudyCA, func(in classifyInput) bool {
		return in.subjectWord("ca") && !in.subjectHas("self-study", "self study")
	}},
	{ActivityPractical, func(in classifyInput) bool { return in.subjectWord("us") || in.subjectWord("ct") }},
	{ActivityReview, func(in classifyInput) bool { return in.subjectHas(reviewKeywords...) }},
	{ActivityRecordedMaterial, func(in classifyInput) bool { return in.locationHas(recordedKeywords...) }},
	{ActivityPBL, func(in classifyInput) bool { return in.subjectWord("cbl") }},
}

// ClassifyActivityType assigns an activity type label. A hint takes
// precedence over the subject, the subject over the location, and the
// location over the default.
func ClassifyActivityType(subject, location, hint string) string {
	in := newClassifyInput(subject, location, hint)

	if in.hint != "" {
		for _, r := range hintRules {
			if r.match(in) {
				return r.label
			}
		}
	}
	for _, r := range contentRules {
		if r.match(in) {
			return r.label
		}
	}
	return ActivityGeneral
}
