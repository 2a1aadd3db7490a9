// Package nav holds the static, role-scoped navigation menus and the
// active-entry resolver.
//
// # Active-entry resolution
//
// An entry matches the current path when the path equals the entry's href
// exactly or starts with href + "/". Among all matches the longest href
// wins, so a path under /instructor/courses lights up that entry and not
// its /instructor parent. No match means no entry is highlighted. The same
// rule applies to every role's menu.
//
// # Menus
//
// Each role owns exactly one ordered sequence of sections, frozen at
// compile time. MenuFor never returns shared mutable data to callers; the
// slices it hands out are copies.
//
// # What this package must NOT do
//
//   - Depend on session state; the resolver is a pure function of the path
//     and the entry list.
//   - Mutate menus at runtime.
package nav
