package domain

import "time"

// Buckets partitions tasks into mutually exclusive relative-time windows for
// the dashboard. Bucketing uses each task's literal due date; recurrence is
// not resolved here.
type Buckets struct {
	Overdue  []*Task // Due before today and still incomplete
	Today    []*Task // Due today
	Tomorrow []*Task // Due tomorrow
	ThisWeek []*Task // Due after tomorrow, at most 7 days out
	Later    []*Task // Due beyond the 7-day horizon
}

// Bucketize partitions tasks relative to the calendar day of now.
//
// Every task lands in exactly one bucket, except completed tasks whose due
// date has already passed: those are excluded entirely. The 7-day horizon
// day itself belongs to ThisWeek, not Later.
func Bucketize(now time.Time, tasks []*Task) Buckets {
	today := DateOf(now)
	tomorrow := today.AddDays(1)
	horizon := today.AddDays(7)

	var b Buckets
	for _, t := range tasks {
		switch {
		case t.DueDate.Before(today):
			if !t.Completed {
				b.Overdue = append(b.Overdue, t)
			}
		case t.DueDate == today:
			b.Today = append(b.Today, t)
		case t.DueDate == tomorrow:
			b.Tomorrow = append(b.Tomorrow, t)
		case !t.DueDate.After(horizon):
			b.ThisWeek = append(b.ThisWeek, t)
		default:
			b.Later = append(b.Later, t)
		}
	}
	return b
}
