package nav

import (
	"testing"

	sessionkit "github.com/learnware/sessionkit"
)

func TestMenuForEveryRoleHasDistinctHrefs(t *testing.T) {
	roles := []sessionkit.Role{
		sessionkit.RoleAdmin,
		sessionkit.RoleInstructor,
		sessionkit.RoleTrainee,
	}

	for _, role := range roles {
		seen := map[string]bool{}
		for _, section := range MenuFor(role) {
			if len(section.Entries) == 0 {
				t.Fatalf("role %s has empty section %q", role, section.Title)
			}
			for _, entry := range section.Entries {
				if entry.Href == "" || entry.Label == "" {
					t.Fatalf("role %s has incomplete entry %+v", role, entry)
				}
				if seen[entry.Href] {
					t.Fatalf("role %s repeats href %q", role, entry.Href)
				}
				seen[entry.Href] = true
			}
		}
	}
}

func TestMenuForUnknownRoleFallsBackToTrainee(t *testing.T) {
	unknown := MenuFor(sessionkit.Role("superuser"))
	trainee := MenuFor(sessionkit.RoleTrainee)

	if len(unknown) != len(trainee) {
		t.Fatalf("expected trainee menu for unknown role, got %d sections", len(unknown))
	}
	if unknown[0].Entries[0].Href != trainee[0].Entries[0].Href {
		t.Fatal("expected trainee menu content for unknown role")
	}
}

func TestMenuForReturnsCopies(t *testing.T) {
	first := MenuFor(sessionkit.RoleAdmin)
	first[0].Entries[0].Href = "/mutated"

	second := MenuFor(sessionkit.RoleAdmin)
	if second[0].Entries[0].Href == "/mutated" {
		t.Fatal("MenuFor must not expose shared mutable menu data")
	}
}

func TestRoleMenusStartAtRoleHome(t *testing.T) {
	cases := map[sessionkit.Role]string{
		sessionkit.RoleAdmin:      "/admin",
		sessionkit.RoleInstructor: "/instructor",
		sessionkit.RoleTrainee:    "/trainee",
	}
	for role, home := range cases {
		menu := MenuFor(role)
		if menu[0].Entries[0].Href != home {
			t.Fatalf("role %s first entry = %q, want %q", role, menu[0].Entries[0].Href, home)
		}
	}
}
