package notifier

// detailCategories are the families whose notifications link to a
// detail view when a related entity id is known. The remaining
// categories always link to the category list view.
var detailCategories = map[Category]bool{
	CategoryAssignments: true,
	CategoryQuizzes:     true,
	CategoryMessages:    true,
}

// ResolveLink builds the deep link the client navigates to when the
// recipient opens the notification.
//
// The base path is the category segment prefixed with the recipient's
// role. An empty role omits the prefix, which is the degraded path used
// when the profile lookup failed. Two refinements apply on top:
// parents get routed to their organization dashboard for system
// notifications, and assignment/quiz/message notifications with a known
// related entity link straight to the detail view.
func ResolveLink(kind Kind, relatedID string, profile Profile) string {
	category := kind.Category()
	segment := category.Segment()

	if profile.Role == RoleParent && category == CategorySystem {
		if profile.OrgID != "" {
			return "/parent/dashboard/" + profile.OrgID
		}
		return "/parent/dashboard"
	}

	base := "/" + segment
	if profile.Role != "" {
		base = "/" + string(profile.Role) + "/" + segment
	}

	if relatedID != "" && detailCategories[category] {
		return base + "/" + relatedID
	}
	return base
}
