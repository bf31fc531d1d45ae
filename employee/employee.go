// Package employee builds employee values from a type tag.
//
// The set of employee kinds is closed: FullTime, PartTime and Intern. A Factory
// maps each Tag to a constructor and returns nil for tags it does not know.
//
//	f := employee.NewFactory()
//	if e := f.Create(employee.TagIntern); e != nil {
//		fmt.Println(e.Role()) // Intern
//	}
package employee

// Employee is anything that can describe its role.
type Employee interface {
	Role() string
}

// Tag identifies an employee kind. Matching is exact and case-sensitive.
type Tag string

const (
	TagFullTime Tag = "FULLTIME"
	TagPartTime Tag = "PARTTIME"
	TagIntern   Tag = "INTERN"
)

// FullTime is a full-time employee. Variants carry no state, so two values of
// the same kind compare equal and have no identity of their own.
type FullTime struct{}

func (FullTime) Role() string { return "Full-Time Employee" }

// PartTime is a part-time employee.
type PartTime struct{}

func (PartTime) Role() string { return "Part-Time Employee" }

// Intern is an intern.
type Intern struct{}

func (Intern) Role() string { return "Intern" }

var (
	_ Employee = FullTime{}
	_ Employee = PartTime{}
	_ Employee = Intern{}
)
