package app

import "github.com/vk/bikeshare/internal/report"

// coreSections is the ordered list of statistic sections printed for every
// session.
var coreSections = []report.Section{
	report.TimeSection{},
	report.StationSection{},
	report.DurationSection{},
	report.UserSection{},
}
