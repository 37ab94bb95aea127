package validation

// Schema is the client-facing description of a form: its rules plus the
// option sets those rules reference.
type Schema struct {
	Form    string     `json:"form"`
	Fields  []Field    `json:"fields"`
	Options OptionSets `json:"options"`
}

// Describe renders the form for the browser controller.
func (f Form) Describe(options OptionSets) Schema {
	s := Schema{Form: f.Name, Fields: f.Fields, Options: OptionSets{}}
	for _, fd := range f.Fields {
		for _, r := range fd.Rules {
			if r.Kind == KindOption {
				s.Options[r.Options] = options[r.Options]
			}
		}
	}
	return s
}
