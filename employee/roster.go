package employee

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrEmptyName is returned by LoadRoster when an entry has no name.
var ErrEmptyName = errors.New("employee: roster entry without name")

// RosterEntry is one line of a roster file.
type RosterEntry struct {
	Name string `yaml:"name"`
	Type Tag    `yaml:"type"`
}

// Roster is a list of people to hire, in file order.
//
//	employees:
//	  - name: Alice
//	    type: FULLTIME
//	  - name: Bob
//	    type: INTERN
type Roster struct {
	Employees []RosterEntry `yaml:"employees"`
}

// Hire pairs a roster name with the employee built for it.
type Hire struct {
	Name     string
	Employee Employee
}

// LoadRoster decodes a YAML roster. An empty document yields an empty roster.
func LoadRoster(r io.Reader) (Roster, error) {
	var roster Roster
	if err := yaml.NewDecoder(r).Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return Roster{}, nil
		}
		return Roster{}, fmt.Errorf("employee: decode roster: %w", err)
	}
	for i, e := range roster.Employees {
		if e.Name == "" {
			return Roster{}, fmt.Errorf("%w (entry %d)", ErrEmptyName, i)
		}
	}
	return roster, nil
}

// Hire creates one employee per roster entry, keeping roster order.
// Entries whose type the factory does not recognize are returned in skipped.
func (f *Factory) Hire(roster Roster) (hired []Hire, skipped []RosterEntry) {
	for _, entry := range roster.Employees {
		e := f.Create(entry.Type)
		if e == nil {
			skipped = append(skipped, entry)
			continue
		}
		hired = append(hired, Hire{Name: entry.Name, Employee: e})
	}
	return hired, skipped
}
