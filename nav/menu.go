package nav

import (
	sessionkit "github.com/learnware/sessionkit"
)

// Menus are frozen at init. MenuFor hands out copies so callers can never
// reorder or grow the canonical sequences.
var (
	adminMenu = []Section{
		{
			Title: "Overview",
			Entries: []Entry{
				{Label: "Dashboard", Href: "/admin", Icon: "gauge"},
			},
		},
		{
			Title: "Management",
			Entries: []Entry{
				{Label: "Organizations", Href: "/admin/organizations", Icon: "building"},
				{Label: "Courses", Href: "/admin/courses", Icon: "book"},
				{Label: "Enrollments", Href: "/admin/enrollments", Icon: "users"},
			},
		},
		{
			Title: "System",
			Entries: []Entry{
				{Label: "Settings", Href: "/admin/settings", Icon: "cog"},
			},
		},
	}

	instructorMenu = []Section{
		{
			Title: "Overview",
			Entries: []Entry{
				{Label: "Dashboard", Href: "/instructor", Icon: "gauge"},
			},
		},
		{
			Title: "Teaching",
			Entries: []Entry{
				{Label: "Courses", Href: "/instructor/courses", Icon: "book"},
				{Label: "Enrollments", Href: "/instructor/enrollments", Icon: "users"},
			},
		},
	}

	traineeMenu = []Section{
		{
			Title: "Overview",
			Entries: []Entry{
				{Label: "Dashboard", Href: "/trainee", Icon: "gauge"},
			},
		},
		{
			Title: "Learning",
			Entries: []Entry{
				{Label: "My Courses", Href: "/trainee/courses", Icon: "book"},
			},
		},
	}
)

// MenuFor returns the ordered section sequence for a role. Unrecognized
// roles fall back to the trainee menu, the same lowest-privilege rule the
// route guard applies.
func MenuFor(role sessionkit.Role) []Section {
	var src []Section
	switch role.Normalize() {
	case sessionkit.RoleAdmin:
		src = adminMenu
	case sessionkit.RoleInstructor:
		src = instructorMenu
	default:
		src = traineeMenu
	}

	out := make([]Section, len(src))
	for i, s := range src {
		entries := make([]Entry, len(s.Entries))
		copy(entries, s.Entries)
		out[i] = Section{Title: s.Title, Entries: entries}
	}
	return out
}
