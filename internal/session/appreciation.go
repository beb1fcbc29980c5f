package session

// appreciationKeys maps exact streak values to their message keys. The table
// keys on the exact value, not a range: a streak of 4 or 11 yields nothing
// even though 3 and 10 did.
var appreciationKeys = map[int]string{
	3:  "appreciation.streak3",
	5:  "appreciation.streak5",
	10: "appreciation.streak10",
	15: "appreciation.streak15",
	20: "appreciation.streak20",
	25: "appreciation.streak_amazing",
	30: "appreciation.streak_amazing",
	35: "appreciation.streak_amazing",
	40: "appreciation.streak_amazing",
	45: "appreciation.streak_amazing",
	50: "appreciation.streak_amazing",
}

// AppreciationKey returns the message key for an exact streak milestone.
func AppreciationKey(streak int) (string, bool) {
	key, ok := appreciationKeys[streak]
	return key, ok
}
