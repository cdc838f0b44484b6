package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Profile field ranges.
const (
	MinAge, MaxAge         = 0, 120
	MinHeightCM, MaxHeight = 50, 250
	MinWeightKG, MaxWeight = 20, 300
	MinBodyFat, MaxBodyFat = 3, 70
	MinWaterML, MaxWaterML = 1, 5000
	MinNameLen, MaxNameLen = 2, 50
)

var ErrOutOfRange = errors.New("value out of range")

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinNameLen || n > MaxNameLen {
		return "", ErrOutOfRange
	}
	return name, nil
}

func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return ErrOutOfRange
	}
	return nil
}

func ValidateHeight(cm float64) error {
	if cm < MinHeightCM || cm > MaxHeight {
		return ErrOutOfRange
	}
	return nil
}

func ValidateWeight(kg float64) error {
	if kg < MinWeightKG || kg > MaxWeight {
		return ErrOutOfRange
	}
	return nil
}

func ValidateBodyFat(pct float64) error {
	if pct < MinBodyFat || pct > MaxBodyFat {
		return ErrOutOfRange
	}
	return nil
}

func ValidateWaterAmount(ml int) error {
	if ml < MinWaterML || ml > MaxWaterML {
		return ErrOutOfRange
	}
	return nil
}

func ValidateTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil || tz == "" {
		return ErrOutOfRange
	}
	return nil
}
