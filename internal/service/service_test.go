package service

import (
	"time"

	"github.com/ideahub/backend/internal/validation"
)

var testNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newTestValidator() *validation.Validator {
	return validation.NewValidator(validation.DefaultOptions(), validation.WithClock(func() time.Time { return testNow }))
}

func validContactValues() validation.Values {
	return validation.Values{
		"firstName": " Sara ",
		"lastName":  "Alqahtani",
		"gender":    "female",
		"mobile":    "+966501234567",
		"dob":       "2001-03-09",
		"email":     "sara@example.com",
		"language":  "english",
		"message":   "Please tell me about the next intake.",
	}
}

func validProjectValues() validation.Values {
	return validation.Values{
		"teamName":    "Falcons",
		"teamSize":    "10",
		"repName":     "Omar Hassan",
		"repId":       "1234567",
		"repEmail":    "omar@uni.edu.sa",
		"courseCode":  "cs499",
		"category":    "software-engineering",
		"projectType": "solo",
		"projectName": "Campus Navigator",
		"description": "An indoor map of the campus buildings.",
	}
}
