package core

import "fmt"

// IntToStringFixedWidth converts an integer to a string of a specified width,
// left-padding with spaces if the number string is shorter than the width.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

func GetActionType(action Action) string {
	if action == nil {
		return "nil"
	}
	return action.GetType().String()
}
