package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Raghav-2611/saanjha/internal/pregnancy"
)

// Storage keys.
const (
	KeyName       = "userName"
	KeyAge        = "userAge"
	KeyLocation   = "userLocation"
	KeyStatus     = "userStatus"
	KeyLMP        = "userLMPDate"
	KeyOnboarding = "hasCompletedOnboarding"
)

const (
	DefaultName     = "Jane Doe"
	DefaultAge      = 32
	DefaultLocation = "San Jose, CA"
	DefaultStatus   = pregnancy.StatusPregnant
)

// Defaults is the key-value storage a profile lives in.
type Defaults interface {
	Data(key string) ([]byte, bool, error)
	SetData(key string, data []byte) error
	Remove(key string) error
}

// Profile holds the personal details shown on the profile screen.
type Profile struct {
	Name     string
	Age      int
	Location string
	Status   pregnancy.Status
	LMP      *time.Time
}

// Default returns the profile used before anything has been saved.
func Default() Profile {
	return Profile{
		Name:     DefaultName,
		Age:      DefaultAge,
		Location: DefaultLocation,
		Status:   DefaultStatus,
	}
}

// DueDate returns the estimated due date when the status calls for one and
// an LMP date is set.
func (p Profile) DueDate() (time.Time, bool) {
	if p.LMP == nil || !p.Status.ShowsDueDate() {
		return time.Time{}, false
	}
	return pregnancy.CalculateDueDate(*p.LMP), true
}

// Load reads the profile from d. Missing or unreadable values fall back to
// their defaults; only storage failures are returned.
func Load(d Defaults) (Profile, error) {
	p := Default()

	var name string
	if ok, err := read(d, KeyName, &name); err != nil {
		return p, err
	} else if ok && name != "" {
		p.Name = name
	}

	var age int
	if ok, err := read(d, KeyAge, &age); err != nil {
		return p, err
	} else if ok && age > 0 {
		p.Age = age
	}

	var location string
	if ok, err := read(d, KeyLocation, &location); err != nil {
		return p, err
	} else if ok && location != "" {
		p.Location = location
	}

	var status string
	if ok, err := read(d, KeyStatus, &status); err != nil {
		return p, err
	} else if ok && pregnancy.Status(status).Valid() {
		p.Status = pregnancy.Status(status)
	}

	var lmp time.Time
	if ok, err := read(d, KeyLMP, &lmp); err != nil {
		return p, err
	} else if ok && !lmp.IsZero() {
		p.LMP = &lmp
	}

	return p, nil
}

// Save writes every field of p to d. A nil LMP removes the stored date.
func Save(d Defaults, p Profile) error {
	if p.Status != "" && !p.Status.Valid() {
		return fmt.Errorf("unknown status '%s'", p.Status)
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative, got %d", p.Age)
	}

	fields := []struct {
		key   string
		value any
	}{
		{KeyName, p.Name},
		{KeyAge, p.Age},
		{KeyLocation, p.Location},
		{KeyStatus, string(p.Status)},
	}
	for _, f := range fields {
		if err := write(d, f.key, f.value); err != nil {
			return err
		}
	}

	if p.LMP == nil {
		if err := d.Remove(KeyLMP); err != nil {
			return fmt.Errorf("removing %s: %w", KeyLMP, err)
		}
		return nil
	}
	return write(d, KeyLMP, p.LMP.UTC())
}

// Onboarded reports whether first-run setup has completed.
func Onboarded(d Defaults) (bool, error) {
	var done bool
	if _, err := read(d, KeyOnboarding, &done); err != nil {
		return false, err
	}
	return done, nil
}

// MarkOnboarded records that first-run setup has completed.
func MarkOnboarded(d Defaults) error {
	return write(d, KeyOnboarding, true)
}

// read decodes key into v. It reports false when the key is missing or its
// value does not decode.
func read(d Defaults, key string, v any) (bool, error) {
	data, ok, err := d.Data(key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func write(d Defaults, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := d.SetData(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
