package service

import "errors"

// ErrStore marks a failure of the persistence layer. Submissions that fail
// validation return validation.Errors instead and never reach the store.
var ErrStore = errors.New("store failure")
