package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Values is a submitted form: field name to raw string value.
type Values map[string]string

var wordsRe = regexp.MustCompile(`^\p{L}+( \p{L}+)*$`)

// Validator runs form rules through a go-playground/validator engine. It is
// safe for concurrent use.
type Validator struct {
	engine  *validator.Validate
	options OptionSets
	now     func() time.Time

	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithClock overrides the time source used by date rules.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) { v.now = now }
}

// NewValidator builds a Validator that checks option rules against options.
func NewValidator(options OptionSets, opts ...ValidatorOption) *Validator {
	v := &Validator{
		engine:   validator.New(),
		options:  options,
		now:      time.Now,
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, o := range opts {
		o(v)
	}

	mustRegister(v.engine, "words", func(fl validator.FieldLevel) bool {
		return wordsRe.MatchString(fl.Field().String())
	})
	mustRegister(v.engine, "option", func(fl validator.FieldLevel) bool {
		return v.options.Contains(fl.Param(), fl.Field().String())
	})
	mustRegister(v.engine, "pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		y, m, day := v.now().Date()
		today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
		return !d.After(today)
	})

	for _, form := range Forms() {
		for _, f := range form.Fields {
			for _, r := range f.Rules {
				if r.Kind == KindPattern || r.Kind == KindEmail {
					v.patterns[r.Pattern] = regexp.MustCompile(r.Pattern)
				}
			}
		}
	}
	return v
}

func mustRegister(engine *validator.Validate, tag string, fn validator.Func) {
	if err := engine.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Normalize returns the form's fields from values with surrounding
// whitespace removed. Fields not in the form are dropped; absent fields
// become "".
func Normalize(form Form, values Values) Values {
	out := make(Values, len(form.Fields))
	for _, f := range form.Fields {
		out[f.Name] = strings.TrimSpace(values[f.Name])
	}
	return out
}

// Validate checks values against every field of form. Values are trimmed
// first. Each field reports at most its first failing rule; the result is
// nil when everything passes.
func (v *Validator) Validate(form Form, values Values) Errors {
	var errs Errors
	for _, f := range form.Fields {
		value := strings.TrimSpace(values[f.Name])
		if f.Optional && value == "" {
			continue
		}
		for _, r := range f.Rules {
			if !v.check(r, value) {
				errs = append(errs, FieldError{Field: f.Name, Rule: r.Kind, Message: r.Message})
				break
			}
		}
	}
	return errs
}

func (v *Validator) check(r Rule, value string) bool {
	switch r.Kind {
	case KindRequired:
		return v.engine.Var(value, "required") == nil
	case KindLength:
		tag := fmt.Sprintf("min=%d", r.Min)
		if r.Max > 0 {
			tag += fmt.Sprintf(",max=%d", r.Max)
		}
		return v.engine.Var(value, tag) == nil
	case KindLetters:
		return v.engine.Var(value, "alphaunicode") == nil
	case KindWords:
		return v.engine.Var(value, "words") == nil
	case KindPattern, KindEmail:
		// Email is a served pattern too, so the browser runs the same check.
		return v.pattern(r.Pattern).MatchString(value)
	case KindOption:
		return v.engine.Var(value, "option="+r.Options) == nil
	case KindInteger:
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return v.engine.Var(n, fmt.Sprintf("gte=%d,lte=%d", r.Min, r.Max)) == nil
	case KindDigits:
		return v.engine.Var(value, fmt.Sprintf("len=%d,number", r.Min)) == nil
	case KindDate:
		return v.engine.Var(value, "datetime="+DateLayout) == nil
	case KindPastDate:
		return v.engine.Var(value, "pastdate") == nil
	}
	return false
}

func (v *Validator) pattern(p string) *regexp.Regexp {
	v.mu.RLock()
	re, ok := v.patterns[p]
	v.mu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(p)
	v.mu.Lock()
	v.patterns[p] = re
	v.mu.Unlock()
	return re
}
