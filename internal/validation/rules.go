// Package validation holds the declarative field rules for the contact and
// project forms. The same tables are checked authoritatively on the server
// (Validator) and served as JSON to the browser, which runs the same rules
// before submitting.
package validation

import "fmt"

// Kind names a rule. The browser controller switches on the same names.
type Kind string

const (
	KindRequired Kind = "required"
	KindLength   Kind = "length"   // rune count in [Min, Max]
	KindLetters  Kind = "letters"  // Unicode letters only
	KindWords    Kind = "words"    // letter words separated by single spaces
	KindPattern  Kind = "pattern"  // full match of Pattern
	KindEmail    Kind = "email"    // full match of Pattern, the e-mail shape
	KindOption   Kind = "option"   // member of option set Options
	KindInteger  Kind = "integer"  // base-10 integer in [Min, Max]
	KindDigits   Kind = "digits"   // exactly Min ASCII digits
	KindDate     Kind = "date"     // YYYY-MM-DD calendar date
	KindPastDate Kind = "pastDate" // not after today
)

// DateLayout is the wire format of date fields.
const DateLayout = "2006-01-02"

// Rule is one constraint on a field value.
type Rule struct {
	Kind    Kind   `json:"kind"`
	Min     int    `json:"min,omitempty"`
	Max     int    `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Options string `json:"options,omitempty"`
	Message string `json:"message"`
}

// Field lists the rules for one input, checked in order. Values are trimmed
// before any rule runs. Optional fields are skipped when empty.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Optional bool   `json:"optional,omitempty"`
	Rules    []Rule `json:"rules"`
}

// Form is an ordered set of fields. Error output follows field order.
type Form struct {
	Name   string
	Fields []Field
}

// Field returns the named field definition.
func (f Form) Field(name string) (Field, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

const (
	// MobilePattern accepts +9665XXXXXXXX or 05XXXXXXXX.
	MobilePattern = `^(\+9665[0-9]{8}|05[0-9]{8})$`
	// CourseCodePattern accepts two or more letters then two or more digits.
	CourseCodePattern = `^[A-Za-z]{2,}[0-9]{2,}$`
	// EmailPattern is the local@domain.tld shape. It is written with explicit
	// ASCII whitespace so RE2 and JavaScript read it the same way.
	EmailPattern = `^[^@\t\n\v\f\r ]+@[^@\t\n\v\f\r ]+\.[^@\t\n\v\f\r ]+$`
)

// Upper bounds shared with the storage columns.
const (
	MaxEmailLength      = 254
	MaxCourseCodeLength = 32
	// MaxOptionLength caps every option value, including values loaded from
	// an options file.
	MaxOptionLength = 64
)

func required(msg string) Rule { return Rule{Kind: KindRequired, Message: msg} }

func length(label string, min, max int) Rule {
	return Rule{
		Kind:    KindLength,
		Min:     min,
		Max:     max,
		Message: fmt.Sprintf("%s must be between %d and %d characters.", label, min, max),
	}
}

func maxLength(label string, max int) Rule {
	return Rule{
		Kind:    KindLength,
		Max:     max,
		Message: fmt.Sprintf("%s must be at most %d characters.", label, max),
	}
}

func email(msg string) Rule { return Rule{Kind: KindEmail, Pattern: EmailPattern, Message: msg} }

func option(set, msg string) Rule { return Rule{Kind: KindOption, Options: set, Message: msg} }

// ContactForm is the contact-us form.
var ContactForm = Form{
	Name: "contact",
	Fields: []Field{
		{Name: "firstName", Label: "First name", Rules: []Rule{
			required("First name is required."),
			length("First name", 2, 30),
			{Kind: KindLetters, Message: "First name must contain letters only."},
		}},
		{Name: "lastName", Label: "Last name", Rules: []Rule{
			required("Last name is required."),
			length("Last name", 2, 30),
			{Kind: KindLetters, Message: "Last name must contain letters only."},
		}},
		{Name: "gender", Label: "Gender", Rules: []Rule{
			required("Please select a gender."),
			option("gender", "Please select a valid gender."),
		}},
		{Name: "mobile", Label: "Mobile", Rules: []Rule{
			required("Mobile number is required."),
			{Kind: KindPattern, Pattern: MobilePattern, Message: "Mobile number must be in the format +9665XXXXXXXX or 05XXXXXXXX."},
		}},
		{Name: "dob", Label: "Date of birth", Rules: []Rule{
			required("Date of birth is required."),
			{Kind: KindDate, Message: "Date of birth must be a valid date."},
			{Kind: KindPastDate, Message: "Date of birth cannot be in the future."},
		}},
		{Name: "email", Label: "Email", Rules: []Rule{
			required("Email is required."),
			maxLength("Email", MaxEmailLength),
			email("Please enter a valid email address."),
		}},
		{Name: "language", Label: "Language", Rules: []Rule{
			required("Please select a language."),
			option("language", "Please select a valid language."),
		}},
		{Name: "message", Label: "Message", Rules: []Rule{
			required("Message is required."),
			length("Message", 10, 1000),
		}},
	},
}

// ProjectForm is the team project idea form.
var ProjectForm = Form{
	Name: "project",
	Fields: []Field{
		{Name: "teamName", Label: "Team name", Rules: []Rule{
			required("Team name is required."),
			length("Team name", 3, 50),
		}},
		{Name: "teamSize", Label: "Team size", Rules: []Rule{
			required("Team size is required."),
			{Kind: KindInteger, Min: 1, Max: 10, Message: "Team size must be a whole number between 1 and 10."},
		}},
		{Name: "repName", Label: "Representative name", Rules: []Rule{
			required("Representative name is required."),
			length("Representative name", 3, 50),
			{Kind: KindWords, Message: "Representative name must contain letters and spaces only."},
		}},
		{Name: "repId", Label: "Representative ID", Rules: []Rule{
			required("Representative ID is required."),
			{Kind: KindDigits, Min: 7, Max: 7, Message: "Representative ID must be exactly 7 digits."},
		}},
		{Name: "repEmail", Label: "Representative email", Rules: []Rule{
			required("Representative email is required."),
			maxLength("Representative email", MaxEmailLength),
			email("Please enter a valid representative email address."),
		}},
		{Name: "otherMembers", Label: "Other members", Optional: true},
		{Name: "courseCode", Label: "Course code", Rules: []Rule{
			required("Course code is required."),
			maxLength("Course code", MaxCourseCodeLength),
			{Kind: KindPattern, Pattern: CourseCodePattern, Message: "Course code must be at least two letters followed by at least two digits (e.g. CS101)."},
		}},
		{Name: "category", Label: "Category", Rules: []Rule{
			required("Please select a category."),
			option("category", "Please select a valid category."),
		}},
		{Name: "projectType", Label: "Project type", Rules: []Rule{
			required("Please select a project type."),
			option("projectType", "Please select a valid project type."),
		}},
		{Name: "projectName", Label: "Project name", Rules: []Rule{
			required("Project name is required."),
			length("Project name", 3, 60),
		}},
		{Name: "description", Label: "Description", Rules: []Rule{
			required("Description is required."),
			length("Description", 10, 400),
		}},
		{Name: "tools", Label: "Tools", Optional: true},
	},
}

// Lookup returns the form registered under name.
func Lookup(name string) (Form, bool) {
	switch name {
	case ContactForm.Name:
		return ContactForm, true
	case ProjectForm.Name:
		return ProjectForm, true
	}
	return Form{}, false
}

// Forms returns every known form.
func Forms() []Form {
	return []Form{ContactForm, ProjectForm}
}
