package calendar

import (
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	typePublicHoliday   = "public_holiday"
	typeTransferWorkday = "transfer_workday"

	// maxRangeDays bounds a single holiday period; anything longer is bad data
	maxRangeDays = 366
)

// Normalizer converts provider payloads into a Classification
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer creates a new Normalizer
func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize flattens payload into the holidays and makeup workdays of year.
// Malformed entries are skipped; it never fails.
func (n *Normalizer) Normalize(year int, payload Payload) *Classification {
	c := NewClassification(year)

	switch payload.Kind {
	case PayloadRanged:
		for _, entry := range payload.Ranges {
			n.addRange(c, entry)
		}
	case PayloadFlat:
		for _, entry := range payload.Dates {
			n.addFlat(c, entry)
		}
	}

	// Keep the sets disjoint; makeup status wins.
	for d := range c.MakeupWorkdays {
		if _, ok := c.Holidays[d]; ok {
			n.logger.Warn("Date listed as holiday and makeup workday, keeping makeup",
				zap.Int("year", year),
				zap.String("date", d))
			delete(c.Holidays, d)
		}
	}

	return c
}

func (n *Normalizer) addRange(c *Classification, entry RangedEntry) {
	start, err := dateutil.ParseDate(entry.StartDate)
	if err != nil {
		n.logger.Debug("Skipping range with invalid start",
			zap.String("name", entry.Name),
			zap.Error(err))
		return
	}

	end, err := dateutil.ParseDate(entry.EndDate)
	if err != nil {
		n.logger.Debug("Skipping range with invalid end",
			zap.String("name", entry.Name),
			zap.Error(err))
		return
	}
	if end.Before(start) {
		end = start
	}

	if end.Sub(start) > maxRangeDays*24*time.Hour {
		n.logger.Warn("Skipping implausibly long holiday range",
			zap.String("name", entry.Name),
			zap.String("start", entry.StartDate),
			zap.String("end", entry.EndDate))
		return
	}

	dateutil.EachDay(start, end, c.Holidays.Add)

	for _, comp := range entry.CompDays {
		d, err := dateutil.ParseDate(comp)
		if err != nil {
			n.logger.Debug("Skipping invalid compensatory date",
				zap.String("name", entry.Name),
				zap.Error(err))
			continue
		}
		c.MakeupWorkdays.Add(d)
	}
}

func (n *Normalizer) addFlat(c *Classification, entry FlatEntry) {
	var target DateSet
	switch entry.Type {
	case typePublicHoliday:
		target = c.Holidays
	case typeTransferWorkday:
		target = c.MakeupWorkdays
	default:
		return
	}

	d, err := dateutil.ParseDate(entry.Date)
	if err != nil {
		n.logger.Debug("Skipping dated entry with invalid date",
			zap.String("type", entry.Type),
			zap.Error(err))
		return
	}
	target.Add(d)
}
