package schedule

import "time"

// SampleEntries returns the starter entries shown to a new user, relative to now.
func SampleEntries(now time.Time) []Entry {
	loc := now.Location()
	today := DateOf(now)

	scan := NewEntry("First trimester scan",
		TimeOfDay{Hour: 10}.On(today.AddDays(1), loc), KindEvent)
	scan.Notes = "City Hospital - go together"

	vitamins := NewEntry("Prenatal vitamins",
		TimeOfDay{Hour: 9}.On(today, loc), KindTask)
	vitamins.Notes = "Partner checks if taken"

	walk := NewEntry("Light evening walk",
		TimeOfDay{Hour: 18, Minute: 30}.On(today.AddDays(7), loc), KindTask)
	walk.Notes = "Short walk together"

	return []Entry{scan, vitamins, walk}
}

// SeedIfEmpty adds the sample entries when the store has none.
// It reports whether anything was added.
func (s *Store) SeedIfEmpty(now time.Time) (bool, error) {
	if len(s.Items()) > 0 {
		return false, nil
	}
	for _, e := range SampleEntries(now.In(s.loc)) {
		if err := s.Add(e); err != nil {
			return false, err
		}
	}
	return true, nil
}
