package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 15, 13, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return NewValidator(DefaultOptions(), WithClock(func() time.Time { return fixedNow }))
}

func validContact() Values {
	return Values{
		"firstName": "Sara",
		"lastName":  "Alqahtani",
		"gender":    "female",
		"mobile":    "0501234567",
		"dob":       "2001-03-09",
		"email":     "sara@example.com",
		"language":  "arabic",
		"message":   "I would like to know more about the program.",
	}
}

func validProject() Values {
	return Values{
		"teamName":     "Falcons",
		"teamSize":     "4",
		"repName":      "Omar Hassan",
		"repId":        "4412345",
		"repEmail":     "omar@uni.edu.sa",
		"otherMembers": "",
		"courseCode":   "CS499",
		"category":     "computer-science",
		"projectType":  "group",
		"projectName":  "Campus Navigator",
		"description":  "An indoor map of the campus buildings.",
		"tools":        "",
	}
}

func with(v Values, field, value string) Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	out[field] = value
	return out
}

func TestValidate_ValidForms(t *testing.T) {
	v := newTestValidator()
	assert.Empty(t, v.Validate(ContactForm, validContact()))
	assert.Empty(t, v.Validate(ProjectForm, validProject()))
}

func TestValidate_ContactSingleViolation(t *testing.T) {
	v := newTestValidator()
	cases := []struct {
		name  string
		field string
		value string
		rule  Kind
	}{
		{"first name missing", "firstName", "", KindRequired},
		{"first name too short", "firstName", "S", KindLength},
		{"first name too long", "firstName", strings.Repeat("a", 31), KindLength},
		{"first name digits", "firstName", "Sara1", KindLetters},
		{"last name with space", "lastName", "Al Qahtani", KindLetters},
		{"gender missing", "gender", "", KindRequired},
		{"gender unknown", "gender", "other", KindOption},
		{"mobile wrong prefix", "mobile", "0601234567", KindPattern},
		{"dob missing", "dob", "", KindRequired},
		{"dob not a date", "dob", "2001-02-30", KindDate},
		{"dob in future", "dob", "2026-10-16", KindPastDate},
		{"email no tld", "email", "sara@example", KindEmail},
		{"email no at", "email", "sara.example.com", KindEmail},
		{"language missing", "language", "", KindRequired},
		{"language unknown", "language", "klingon", KindOption},
		{"message short", "message", "too short", KindLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(ContactForm, with(validContact(), tc.field, tc.value))
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.rule, errs[0].Rule)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidate_CollectsAllFieldsInOrder(t *testing.T) {
	v := newTestValidator()
	errs := v.Validate(ContactForm, Values{})

	assert.Equal(t, []string{
		"firstName", "lastName", "gender", "mobile", "dob", "email", "language", "message",
	}, errs.Fields())
	for _, fe := range errs {
		assert.Equal(t, KindRequired, fe.Rule)
	}
}

func TestValidate_MobileBoundaries(t *testing.T) {
	v := newTestValidator()
	cases := map[string]bool{
		"0501234567":     true,
		"050123456":      false,
		"05012345678":    false,
		"+966501234567":  true,
		"+96650123456":   false,
		"+9665012345678": false,
		"966501234567":   false,
		"9665012345678":  false,
		"+966401234567":  false,
		"05O1234567":     false,
	}
	for mobile, ok := range cases {
		errs := v.Validate(ContactForm, with(validContact(), "mobile", mobile))
		if ok {
			assert.Empty(t, errs, "mobile %q should pass", mobile)
		} else {
			assert.Equal(t, []string{"mobile"}, errs.Fields(), "mobile %q should fail", mobile)
		}
	}
}

func TestValidate_MessageLengthBoundaries(t *testing.T) {
	v := newTestValidator()

	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "message", "0123456789")))
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "message", strings.Repeat("m", 1000))))

	errs := v.Validate(ContactForm, with(validContact(), "message", "012345678"))
	require.Len(t, errs, 1)
	assert.Equal(t, "message", errs[0].Field)
	assert.Equal(t, KindLength, errs[0].Rule)

	errs = v.Validate(ContactForm, with(validContact(), "message", strings.Repeat("m", 1001)))
	require.Len(t, errs, 1)
	assert.Equal(t, KindLength, errs[0].Rule)
}

func TestValidate_LengthCountsCharacters(t *testing.T) {
	v := newTestValidator()
	// Ten Arabic letters are twenty bytes but ten characters.
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "message", "مرحبامرحبا")))
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "firstName", "سارة")))
}

func TestValidate_TrimsBeforeChecking(t *testing.T) {
	v := newTestValidator()
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "firstName", "  Sara  ")))

	errs := v.Validate(ContactForm, with(validContact(), "firstName", "   "))
	require.Len(t, errs, 1)
	assert.Equal(t, KindRequired, errs[0].Rule)
}

func TestValidate_DOBToday(t *testing.T) {
	v := newTestValidator()
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "dob", "2026-10-15")))
}

func TestValidate_TeamSizeBoundaries(t *testing.T) {
	v := newTestValidator()
	cases := map[string]bool{
		"0":   false,
		"1":   true,
		"10":  true,
		"11":  false,
		"-1":  false,
		"2.5": false,
		"two": false,
	}
	for size, ok := range cases {
		errs := v.Validate(ProjectForm, with(validProject(), "teamSize", size))
		if ok {
			assert.Empty(t, errs, "teamSize %q should pass", size)
		} else {
			require.Len(t, errs, 1, "teamSize %q should fail", size)
			assert.Equal(t, KindInteger, errs[0].Rule)
		}
	}
}

func TestValidate_RepIDBoundaries(t *testing.T) {
	v := newTestValidator()
	cases := map[string]bool{
		"1234567":  true,
		"0000000":  true,
		"123456":   false,
		"12345678": false,
		"12345a7":  false,
		"１２３４５６７": false,
	}
	for id, ok := range cases {
		errs := v.Validate(ProjectForm, with(validProject(), "repId", id))
		if ok {
			assert.Empty(t, errs, "repId %q should pass", id)
		} else {
			assert.Equal(t, []string{"repId"}, errs.Fields(), "repId %q should fail", id)
		}
	}
}

func TestValidate_CourseCode(t *testing.T) {
	v := newTestValidator()
	cases := map[string]bool{
		"CS101":   true,
		"cs10":    true,
		"Math2024": true,
		"C101":    false,
		"CS1":     false,
		"101CS":   false,
		"CS 101":  false,
	}
	for code, ok := range cases {
		errs := v.Validate(ProjectForm, with(validProject(), "courseCode", code))
		if ok {
			assert.Empty(t, errs, "courseCode %q should pass", code)
		} else {
			assert.Equal(t, []string{"courseCode"}, errs.Fields(), "courseCode %q should fail", code)
		}
	}
}

func TestValidate_RepNameWords(t *testing.T) {
	v := newTestValidator()
	assert.Empty(t, v.Validate(ProjectForm, with(validProject(), "repName", "Omar Al Hassan")))

	errs := v.Validate(ProjectForm, with(validProject(), "repName", "Omar  Hassan"))
	assert.Equal(t, []string{"repName"}, errs.Fields())

	errs = v.Validate(ProjectForm, with(validProject(), "repName", "Omar_H"))
	assert.Equal(t, []string{"repName"}, errs.Fields())
}

func TestValidate_OptionalFieldsAcceptAnything(t *testing.T) {
	v := newTestValidator()
	values := with(validProject(), "tools", "Go, PostgreSQL & HTMX!")
	values = with(values, "otherMembers", "Ali; Noura")
	assert.Empty(t, v.Validate(ProjectForm, values))

	delete(values, "tools")
	delete(values, "otherMembers")
	assert.Empty(t, v.Validate(ProjectForm, values))
}

func TestValidate_ProjectLengths(t *testing.T) {
	v := newTestValidator()
	assert.Equal(t, []string{"teamName"}, v.Validate(ProjectForm, with(validProject(), "teamName", "AB")).Fields())
	assert.Equal(t, []string{"projectName"}, v.Validate(ProjectForm, with(validProject(), "projectName", strings.Repeat("p", 61))).Fields())
	assert.Empty(t, v.Validate(ProjectForm, with(validProject(), "projectName", strings.Repeat("p", 60))))
	assert.Equal(t, []string{"description"}, v.Validate(ProjectForm, with(validProject(), "description", strings.Repeat("d", 401))).Fields())
}

func TestNormalize(t *testing.T) {
	in := Values{"teamName": "  Falcons ", "bogus": "x"}
	out := Normalize(ProjectForm, in)

	assert.Equal(t, "Falcons", out["teamName"])
	assert.Equal(t, "", out["tools"])
	_, ok := out["bogus"]
	assert.False(t, ok)
	assert.Len(t, out, len(ProjectForm.Fields))
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{
		{Field: "a", Rule: KindRequired, Message: "A is required."},
		{Field: "b", Rule: KindLength, Message: "B is too long."},
	}
	assert.Equal(t, "validation failed: A is required.; B is too long.", errs.Error())
	assert.Equal(t, []string{"A is required.", "B is too long."}, errs.Messages())
}

// Values longer than their storage column must fail validation, not the insert.
func TestValidate_ColumnWidthBounds(t *testing.T) {
	v := newTestValidator()

	longCode := "CS" + strings.Repeat("1", 40)
	errs := v.Validate(ProjectForm, with(validProject(), "courseCode", longCode))
	require.Len(t, errs, 1)
	assert.Equal(t, "courseCode", errs[0].Field)
	assert.Equal(t, KindLength, errs[0].Rule)

	maxCode := "CS" + strings.Repeat("1", MaxCourseCodeLength-2)
	assert.Empty(t, v.Validate(ProjectForm, with(validProject(), "courseCode", maxCode)))

	longEmail := strings.Repeat("a", 300) + "@uni.edu.sa"
	errs = v.Validate(ProjectForm, with(validProject(), "repEmail", longEmail))
	require.Len(t, errs, 1)
	assert.Equal(t, "repEmail", errs[0].Field)
	assert.Equal(t, KindLength, errs[0].Rule)

	errs = v.Validate(ContactForm, with(validContact(), "email", longEmail))
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	maxEmail := strings.Repeat("a", MaxEmailLength-len("@uni.edu.sa")) + "@uni.edu.sa"
	assert.Empty(t, v.Validate(ContactForm, with(validContact(), "email", maxEmail)))
}

func TestValidate_EmailShape(t *testing.T) {
	v := newTestValidator()
	cases := map[string]bool{
		"sara@example.com":      true,
		"sara.ali+x@uni.edu.sa": true,
		"sara@localhost.c":      true,
		"sara@example":          false,
		"sara example@uni.sa":   false,
		"sara\t@uni.sa":         false,
		"sara@@uni.sa":          false,
		"@uni.sa":               false,
	}
	for in, want := range cases {
		errs := v.Validate(ContactForm, with(validContact(), "email", in))
		assert.Equal(t, want, len(errs) == 0, in)
	}
}
