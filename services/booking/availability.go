package booking

import (
	"sort"

	"staycation/models"
)

// hourRange is a parsed TimeSlot.
type hourRange struct {
	start, end int
	kind       string
}

// OverlapsWithMargin reports whether [start, end) intersects the slot
// [slotStart, slotEnd) widened by margin hours on both sides.
func OverlapsWithMargin(start, end, slotStart, slotEnd, margin int) bool {
	return start < slotEnd+margin && end > slotStart-margin
}

// slotMargin is the buffer enforced around a disabled slot. Reservation
// slots keep a cleaning-sized gap on both sides; a cleaning slot is already
// the buffer after its reservation.
func slotMargin(kind string, rules models.BookingRules) int {
	if kind == models.SlotKindCleaning {
		return 0
	}
	return rules.CleaningHours
}

// DisabledTimeSlots returns the slots of date ("YYYY-MM-DD") that are taken
// by hourly reservations, each followed by its cleaning slot. Daily
// reservations and reservations with malformed times are ignored.
func DisabledTimeSlots(reservations []models.Reservation, date string, rules models.BookingRules) []models.TimeSlot {
	ranges := disabledRanges(reservations, date, rules)
	slots := make([]models.TimeSlot, 0, len(ranges))
	for _, r := range ranges {
		slots = append(slots, models.TimeSlot{
			StartTime: FormatHour(r.start),
			EndTime:   FormatHour(r.end),
			Kind:      r.kind,
		})
	}
	return slots
}

func disabledRanges(reservations []models.Reservation, date string, rules models.BookingRules) []hourRange {
	var ranges []hourRange
	for _, res := range reservations {
		if !res.IsHourly() || res.StartDay() != date {
			continue
		}
		if res.StartTime == "" || res.EndTime == "" {
			continue
		}
		start, err := ParseHour(res.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseHour(res.EndTime)
		if err != nil || end <= start {
			continue
		}
		ranges = append(ranges, hourRange{start: start, end: end, kind: models.SlotKindReservation})

		cleaningEnd := end + rules.CleaningHours
		if cleaningEnd > hoursPerDay {
			cleaningEnd = hoursPerDay
		}
		if cleaningEnd > end {
			ranges = append(ranges, hourRange{start: end, end: cleaningEnd, kind: models.SlotKindCleaning})
		}
	}
	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].start != ranges[j].start {
			return ranges[i].start < ranges[j].start
		}
		return ranges[i].kind > ranges[j].kind
	})
	return ranges
}

func parseSlots(slots []models.TimeSlot) []hourRange {
	ranges := make([]hourRange, 0, len(slots))
	for _, s := range slots {
		start, err := ParseHour(s.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseHour(s.EndTime)
		if err != nil {
			continue
		}
		kind := s.Kind
		if kind == "" {
			kind = models.SlotKindReservation
		}
		ranges = append(ranges, hourRange{start: start, end: end, kind: kind})
	}
	return ranges
}

// DisabledDates returns every calendar day covered by an existing
// reservation of any type, inclusive of both ends, sorted and de-duplicated.
func DisabledDates(reservations []models.Reservation) []string {
	seen := make(map[string]struct{})
	for _, res := range reservations {
		start := truncateDay(res.StartDate)
		end := truncateDay(res.EndDate)
		if res.EndDate.IsZero() || end.Before(start) {
			end = start
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			seen[d.Format(models.DayLayout)] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// AvailableStartTimes lists the "HH:00" start times from which at least one
// valid hourly booking exists given the disabled slots.
func AvailableStartTimes(slots []models.TimeSlot, rules models.BookingRules) []string {
	ranges := parseSlots(slots)
	times := []string{}
	for start := 0; start < hoursPerDay; start++ {
		for end := start + 1; end <= rules.MaxEndHour; end++ {
			if checkHourRange(start, end, ranges, rules) == nil {
				times = append(times, FormatHour(start))
				break
			}
		}
	}
	return times
}

// AvailableEndTimes lists the "HH:00" end times that form a valid hourly
// booking together with startTime.
func AvailableEndTimes(startTime string, slots []models.TimeSlot, rules models.BookingRules) ([]string, error) {
	start, err := ParseHour(startTime)
	if err != nil {
		return nil, NewInvalidTimeRangeError("Invalid start time")
	}
	ranges := parseSlots(slots)
	times := []string{}
	for end := start + 1; end <= rules.MaxEndHour; end++ {
		if checkHourRange(start, end, ranges, rules) == nil {
			times = append(times, FormatHour(end))
		}
	}
	return times, nil
}
