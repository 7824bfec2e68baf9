// Package pace bounds how often page handlers run.
//
// RateLimiter executes the first call of a quiet period immediately and drops
// every call during the following cooldown. Debouncer collapses a burst of
// calls into a single invocation once input has been quiet for the wait
// period, or into a single leading invocation in immediate mode.
//
// Both take a clock.Scheduler so that, on the page loop, their timers fire on
// the loop goroutine, and in tests they run against a manual clock.
package pace
