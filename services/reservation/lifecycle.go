package reservation

import "slotbook/models"

// CanTransition reports whether a reservation may move from one status to
// another. Pending may confirm or cancel, confirmed may cancel, and
// cancelled is terminal. Same-state updates on live reservations are no-ops
// so that note edits carrying the current status pass through.
func CanTransition(from, to string) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusPending || to == models.StatusConfirmed || to == models.StatusCancelled
	case models.StatusConfirmed:
		return to == models.StatusConfirmed || to == models.StatusCancelled
	default:
		return false
	}
}

// CanModify reports whether the caller may read or update a reservation:
// the customer who owns it, or the owner of the company it belongs to.
func CanModify(identity models.Identity, res *models.Reservation, companyOwnerID string) bool {
	if identity.UserID == "" {
		return false
	}
	return identity.UserID == res.UserID || (companyOwnerID != "" && identity.UserID == companyOwnerID)
}

// CanHardDelete reports whether the caller may permanently remove a
// reservation. Hard deletion is an administrative capability, distinct from
// company ownership.
func CanHardDelete(identity models.Identity) bool {
	return identity.IsAdmin()
}
