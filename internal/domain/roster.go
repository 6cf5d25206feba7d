package domain

import "sort"

// User is a roster entry.
type User struct {
	Age    int  `json:"age"`
	Online bool `json:"online"`
}

// Roster maps a user name to its entry.
type Roster map[string]User

// DefaultRosterNames are the names checked when none are given.
var DefaultRosterNames = []string{"Alan", "Jeff", "Ryan", "Sarah"}

// IsEveryoneHere reports whether every name is present in r.
// With no names it checks DefaultRosterNames.
func IsEveryoneHere(r Roster, names ...string) bool {
	return len(Missing(r, names...)) == 0
}

// Missing returns the names absent from r, sorted.
func Missing(r Roster, names ...string) []string {
	if len(names) == 0 {
		names = DefaultRosterNames
	}
	var out []string
	for _, n := range names {
		if _, ok := r[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Online returns the names of online users, sorted.
func (r Roster) Online() []string {
	var out []string
	for n, u := range r {
		if u.Online {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
