package schema

import "scopeforge/internal/engine"

// highRiskFeatures is the registry of question ids whose affirmative answer
// always flags a high-complexity risk item, regardless of the question's own
// risk level.
var highRiskFeatures = []string{
	"realtime",
	"live_location",
	"video_streaming",
	"live_streaming",
	"multi_tenant",
	"encryption",
	"ai_enabled",
	"ai_knowledge_base",
	"offline_mode",
	"payments_enabled",
	"compliance_requirements",
}

// featureMappings translates trigger answers into derived engineering tasks
// bucketed by priority tier. Order matters: derivation appends in table
// order.
var featureMappings = []engine.FeatureRule{
	{
		Trigger: "payments_enabled",
		MVP:     []string{"Checkout flow", "Order states", "Receipts"},
		V1:      []string{"Refund handling", "Promo codes", "Saved cards"},
		Later:   []string{"Split payments", "Multi-currency", "Subscription management"},
	},
	{
		Trigger: "needs_rbac",
		MVP:     []string{"Basic role assignment", "Permission checks"},
		V1:      []string{"Admin audit log", "Role management UI"},
		Later:   []string{"Dynamic permissions", "Role inheritance"},
	},
	{
		Trigger: "notifications_enabled",
		MVP:     []string{"Email notifications", "In-app notifications"},
		V1:      []string{"Notification preferences", "Templates"},
		Later:   []string{"Push notifications", "Digest emails"},
	},
	{
		Trigger: "chat_enabled",
		MVP:     []string{"Basic messaging", "Message history"},
		V1:      []string{"Read receipts", "Typing indicators", "Attachments"},
		Later:   []string{"Video calls", "Screen sharing", "Encryption"},
	},
	{
		Trigger: "social_enabled",
		MVP:     []string{"Likes", "Comments"},
		V1:      []string{"Follow/Subscribe", "Activity feed"},
		Later:   []string{"Algorithmic feed", "Trending"},
	},
	{
		Trigger: "maps_enabled",
		MVP:     []string{"Display maps", "Location markers"},
		V1:      []string{"Location search", "Directions"},
		Later:   []string{"Live location", "Geofencing"},
	},
	{
		Trigger: "booking_enabled",
		MVP:     []string{"Basic scheduling", "Availability"},
		V1:      []string{"Waitlist", "Reminders", "Calendar sync"},
		Later:   []string{"Recurring bookings", "Multi-location"},
	},
	{
		Trigger: "admin_enabled",
		MVP:     []string{"User management", "Basic CRUD"},
		V1:      []string{"Analytics dashboard", "Reports"},
		Later:   []string{"Impersonation", "Audit logs", "Feature flags"},
	},
	{
		Trigger: "ai_enabled",
		MVP:     []string{"Basic AI integration"},
		V1:      []string{"Rate limiting", "Cost controls"},
		Later:   []string{"RAG/Knowledge base", "Custom models"},
	},
}

// DeriveRules returns the immutable derivation configuration used by the
// engine for the blueprint schema
func DeriveRules() engine.DeriveRules {
	return engine.DeriveRules{
		HighRisk: highRiskFeatures,
		Features: featureMappings,
	}
}
