package snippets

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the longest title accepted, counted in runes.
const MaxTitleLength = 100

// Form is the decoded body of the create-snippet form.
type Form struct {
	Title   string `form:"title"`
	Content string `form:"content"`
	Expires int    `form:"expires"`
}

// Validate checks the form and returns a message per invalid field. An empty
// map means the form is valid.
func (f Form) Validate() map[string]string {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(f.Title) == "":
		errs["title"] = "This field cannot be blank"
	case utf8.RuneCountInString(f.Title) > MaxTitleLength:
		errs["title"] = "This field cannot be more than 100 characters long"
	}

	if strings.TrimSpace(f.Content) == "" {
		errs["content"] = "This field cannot be blank"
	}

	valid := false
	for _, d := range ExpiryDays {
		if f.Expires == d {
			valid = true
			break
		}
	}
	if !valid {
		errs["expires"] = "This field must equal 1, 7 or 365"
	}

	return errs
}
