// Package task runs periodic maintenance jobs. A Scheduler fires registered
// tasks on a cron schedule; the sweep tasks delete expired images and evict
// idle studio sessions so neither grows without bound.
package task
