// Package translate formats user facing messages for the current locale.
//
// Every error and report string in tk1mem is an en-US fmt format passed
// through From. The locale is taken from the environment once, at start
// up, and falls back to en-US when it cannot be determined.
package translate
