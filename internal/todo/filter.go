package todo

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterCompleted  Filter = "completed"
	FilterInProgress Filter = "in-progress"
)

// Filters lists the recognized filters in cycling order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterInProgress}

// ParseFilter converts raw input to a Filter and reports whether it is recognized.
// Unrecognized input is still returned as a Filter; it matches no task.
func ParseFilter(raw string) (Filter, bool) {
	f := Filter(raw)
	return f, f.Valid()
}

// Valid reports whether f is one of the recognized filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterInProgress:
		return true
	}
	return false
}

// Next returns the filter after f in cycling order. Unrecognized filters cycle to FilterAll.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label returns a human readable name of the filter.
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterInProgress:
		return "In Progress"
	}
	return string(f)
}

// Shows reports whether a task with the given completion flag is visible under f.
func (f Filter) Shows(completed bool) bool {
	show := false
	switch f {
	case FilterAll:
		show = true
	case FilterCompleted:
		show = completed
	case FilterInProgress:
		show = !completed
	}
	return show
}
