// Package dest models a saved, named redirect destination.
package dest

import "fmt"

// New creates a named destination.
func New(name, url string) *Dest {
	return &Dest{
		Name: name,
		URL:  url,
	}
}

type Dest struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Notes string `json:"notes,omitempty"`
}

func (d *Dest) String() string {
	return fmt.Sprintf("%s  %s", d.Name, d.URL)
}
