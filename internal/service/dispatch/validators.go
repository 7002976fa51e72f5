package dispatch

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "accepted", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
