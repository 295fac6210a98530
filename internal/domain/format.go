package domain

import (
	"strconv"
	"time"
)

func fieldIndex(path string, i int) string {
	return path + "." + strconv.Itoa(i)
}

func isISODate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func isClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
