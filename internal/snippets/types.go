package snippets

import (
	"errors"
	"time"
)

// ErrNoRecord is returned when a snippet does not exist or has expired.
var ErrNoRecord = errors.New("snippets: no matching record found")

// Snippet is a titled piece of text that stays visible until it expires.
type Snippet struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
	Expires time.Time `json:"expires"`
}

// ExpiryDays lists the lifetimes, in days, a snippet may be created with.
var ExpiryDays = []int{365, 7, 1}

// DefaultLatestLimit is the number of snippets Latest returns when asked for
// zero or fewer.
const DefaultLatestLimit = 10
