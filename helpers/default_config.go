package helpers

import "time"

func ConfigDefaultInt(InInt int, valueIfIntZero int) int {
	if InInt == 0 {
		return valueIfIntZero
	}
	return InInt
}

func ConfigDefaultStr(inString string, valueIfStringBlank string) string {
	if inString == "" {
		return valueIfStringBlank
	}
	return inString
}

func IntMillisecondDefault(ms int, def time.Duration) time.Duration {
	if ms == 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
