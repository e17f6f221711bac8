package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/vk/bikeshare/internal/prompt"
	"github.com/vk/bikeshare/internal/trip"
)

const (
	greeting = "Hello! Let's explore some US bikeshare data!"

	invalidCity  = "City input not valid, Please try again"
	invalidMonth = "Month input not valid, Please try again"
	invalidDay   = "\nDay input not valid, Please try again"

	dayQuestion = "Enter a day of the week or Enter \"all\" of them\n"

	all = "all"
)

// selection is one session's answers.
type selection struct {
	City   string
	Month  string
	Day    string
	Filter trip.Filter
}

// weekdays returns the lower-cased weekday names starting on Monday.
func weekdays() []string {
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, strings.ToLower(time.Weekday((i+1)%7).String()))
	}
	return days
}

// collect asks for city, month and day, re-prompting until each answer is
// valid.
func (a *App) collect(p *prompt.Prompter) (selection, error) {
	cities := a.catalog.CityNames()
	city, err := p.Choose(
		fmt.Sprintf("\nChoose a city from %s: \n", strings.Join(cities, ", ")),
		cities, invalidCity)
	if err != nil {
		return selection{}, err
	}

	months := append(append([]string(nil), a.catalog.Months...), all)
	month, err := p.Choose(
		fmt.Sprintf("Enter a month from the first %d months of the year or Enter %q of them\n", len(a.catalog.Months), all),
		months, invalidMonth)
	if err != nil {
		return selection{}, err
	}

	day, err := p.Choose(dayQuestion, append(weekdays(), all), invalidDay)
	if err != nil {
		return selection{}, err
	}

	return selection{
		City:   city,
		Month:  month,
		Day:    day,
		Filter: trip.NewFilter(a.catalog.MonthIndex(month), day),
	}, nil
}
