package report

import (
	"fmt"
	"strconv"
	"time"
)

// PeriodType granularité d'agrégation des rapports.
type PeriodType string

const (
	PeriodDaily      PeriodType = "daily"
	PeriodWeekly     PeriodType = "weekly"
	PeriodMonthly    PeriodType = "monthly"
	PeriodQuarterly  PeriodType = "quarterly"
	PeriodSemiannual PeriodType = "semiannual"
	PeriodAnnual     PeriodType = "annual"
)

// Valid indique si la granularité est connue.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodSemiannual, PeriodAnnual:
		return true
	}
	return false
}

// periodKey dérive l'étiquette de période d'un instant, en UTC. L'identité
// d'un seau hebdomadaire est le dimanche qui ouvre la semaine (pas le numéro
// de semaine ISO), formaté JJ/MM/AAAA.
func periodKey(at time.Time, p PeriodType) string {
	d := at.UTC()
	switch p {
	case PeriodWeekly:
		return "Week of " + weekStart(d).Format("02/01/2006")
	case PeriodMonthly:
		return d.Format("January 2006")
	case PeriodQuarterly:
		return fmt.Sprintf("Q%d %d", (int(d.Month())-1)/3+1, d.Year())
	case PeriodSemiannual:
		s := 1
		if d.Month() > time.June {
			s = 2
		}
		return fmt.Sprintf("S%d %d", s, d.Year())
	case PeriodAnnual:
		return strconv.Itoa(d.Year())
	default: // daily
		return d.Format("2006-01-02")
	}
}

// periodStart retourne l'instant de début de la période contenant at, en UTC.
// C'est lui qui porte l'ordre chronologique des seaux : les étiquettes de
// trimestre ou de semestre ne se re-parsent pas en date de façon fiable.
func periodStart(at time.Time, p PeriodType) time.Time {
	d := at.UTC()
	switch p {
	case PeriodWeekly:
		return weekStart(d)
	case PeriodMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodQuarterly:
		q := (int(d.Month()) - 1) / 3
		return time.Date(d.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	case PeriodSemiannual:
		m := time.January
		if d.Month() > time.June {
			m = time.July
		}
		return time.Date(d.Year(), m, 1, 0, 0, 0, 0, time.UTC)
	case PeriodAnnual:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // daily
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// weekStart retourne le dimanche ouvrant la semaine de d (minuit UTC).
func weekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
