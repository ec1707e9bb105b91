package schema

import "scopeforge/internal/model"

// BlueprintID is the reserved schema id of the built-in questionnaire
const BlueprintID = "blueprint"

// Blueprint returns the built-in application-scoping questionnaire: the
// default schema sessions run against when no host-authored schema is given.
// Callers must treat the result as read-only.
func Blueprint() *model.Schema {
	return &model.Schema{
		ID:    BlueprintID,
		Title: "Application Scoping Blueprint",
		Steps: []model.Step{
			{
				ID:          "framing",
				Title:       "Project Framing",
				Description: "Define the core purpose and vision of your application",
				Icon:        "🎯",
				Questions: []model.Question{
					{
						ID:          "app_name",
						Label:       "What is the name of your app?",
						Type:        model.QuestionText,
						Required:    true,
						Placeholder: "e.g., TaskFlow, ShopEasy, ConnectHub",
					},
					{
						ID:          "one_sentence",
						Label:       "Describe your app in one sentence",
						Description: "This should capture the core value proposition",
						Type:        model.QuestionTextarea,
						Required:    true,
						Placeholder: "e.g., A mobile-first marketplace connecting local artisans with conscious consumers",
					},
					{
						ID:          "problem_solving",
						Label:       "What problem does this solve?",
						Type:        model.QuestionTextarea,
						Required:    true,
						Placeholder: "Describe the pain point your users currently experience",
					},
					{
						ID:          "target_audience",
						Label:       "Who is your primary target audience?",
						Type:        model.QuestionText,
						Required:    true,
						Placeholder: "e.g., Small business owners aged 25-45",
					},
					{
						ID:    "success_metrics",
						Label: "How will you measure success?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "dau_mau", Label: "Daily/Monthly Active Users"},
							{Value: "retention", Label: "User Retention Rate"},
							{Value: "conversion", Label: "Conversion Rate"},
							{Value: "revenue", Label: "Revenue/GMV"},
							{Value: "nps", Label: "NPS Score"},
							{Value: "engagement", Label: "Engagement Time"},
							{Value: "custom", Label: "Custom Metrics"},
						},
					},
				},
			},
			{
				ID:          "users_roles",
				Title:       "Users & Roles",
				Description: "Define who will use your app and their permissions",
				Icon:        "👥",
				Questions: []model.Question{
					{
						ID:       "user_types",
						Label:    "What types of users will your app have?",
						Type:     model.QuestionMultiselect,
						Required: true,
						Options: []model.Option{
							{Value: "end_user", Label: "End Users / Customers"},
							{Value: "admin", Label: "Administrators"},
							{Value: "moderator", Label: "Moderators"},
							{Value: "vendor", Label: "Vendors / Sellers"},
							{Value: "support", Label: "Support Staff"},
							{Value: "manager", Label: "Managers"},
							{Value: "guest", Label: "Guest Users"},
							{Value: "api_client", Label: "API Clients / Partners"},
						},
						FeatureTags: []string{"RBAC", "User Management"},
					},
					{
						ID:          "needs_rbac",
						Label:       "Do you need role-based access control (RBAC)?",
						Type:        model.QuestionToggle,
						Tooltip:     "RBAC allows you to define what each user role can see and do",
						FeatureTags: []string{"RBAC", "Permission System", "Admin Audit Log"},
					},
					{
						ID:        "rbac_complexity",
						Label:     "How complex are your permission needs?",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "needs_rbac", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "simple", Label: "Simple - Admin vs User"},
							{Value: "moderate", Label: "Moderate - 3-5 distinct roles"},
							{Value: "complex", Label: "Complex - Dynamic permissions per resource"},
							{Value: "hierarchical", Label: "Hierarchical - Org-based with inheritance"},
						},
						RiskLevel: model.RiskMedium,
					},
					{
						ID:    "user_profiles",
						Label: "What profile information do users need?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "basic", Label: "Basic (name, email, avatar)"},
							{Value: "bio", Label: "Bio / About section"},
							{Value: "social_links", Label: "Social media links"},
							{Value: "location", Label: "Location"},
							{Value: "preferences", Label: "Preferences / Settings"},
							{Value: "verification", Label: "Verification badges"},
							{Value: "portfolio", Label: "Portfolio / Work samples"},
						},
					},
					{
						ID:          "team_orgs",
						Label:       "Do users belong to teams or organizations?",
						Type:        model.QuestionToggle,
						FeatureTags: []string{"Team Management", "Org Hierarchy"},
					},
					{
						ID:        "org_structure",
						Label:     "Describe your organization structure",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "team_orgs", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "flat", Label: "Flat - Simple team membership"},
							{Value: "hierarchical", Label: "Hierarchical - Teams within orgs"},
							{Value: "matrix", Label: "Matrix - Users in multiple teams"},
							{Value: "multi_tenant", Label: "Multi-tenant - Completely separate orgs"},
						},
						RiskLevel: model.RiskHigh,
					},
				},
			},
			{
				ID:          "platforms",
				Title:       "Platforms & Interfaces",
				Description: "Choose where your app will be available",
				Icon:        "📱",
				Questions: []model.Question{
					{
						ID:       "platforms",
						Label:    "Which platforms do you need?",
						Type:     model.QuestionMultiselect,
						Required: true,
						Options: []model.Option{
							{Value: "web", Label: "Web Application"},
							{Value: "ios", Label: "iOS App"},
							{Value: "android", Label: "Android App"},
							{Value: "desktop", Label: "Desktop App"},
							{Value: "tablet", Label: "Tablet-optimized"},
							{Value: "tv", Label: "TV / Large Screen"},
							{Value: "wearable", Label: "Wearable / Watch"},
						},
					},
					{
						ID:        "mobile_permissions",
						Label:     "Which device permissions are needed?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("ios", "android")},
						Options: []model.Option{
							{Value: "camera", Label: "Camera"},
							{Value: "photos", Label: "Photo Library"},
							{Value: "location", Label: "Location"},
							{Value: "notifications", Label: "Push Notifications"},
							{Value: "contacts", Label: "Contacts"},
							{Value: "microphone", Label: "Microphone"},
							{Value: "bluetooth", Label: "Bluetooth"},
							{Value: "nfc", Label: "NFC"},
							{Value: "biometrics", Label: "Biometrics (Face/Touch ID)"},
						},
					},
					{
						ID:          "offline_mode",
						Label:       "Do you need offline functionality?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("ios", "android")},
						Tooltip:     "Allow users to use core features without internet",
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"Offline Mode", "Data Sync", "Conflict Resolution"},
					},
					{
						ID:        "app_store_needs",
						Label:     "App store distribution requirements",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("ios", "android")},
						Options: []model.Option{
							{Value: "public", Label: "Public app store listing"},
							{Value: "enterprise", Label: "Enterprise distribution"},
							{Value: "testflight", Label: "Beta testing (TestFlight/Play Beta)"},
							{Value: "mdm", Label: "MDM / Device management"},
						},
					},
					{
						ID:          "web_seo",
						Label:       "Do you need SEO optimization?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("web")},
						FeatureTags: []string{"SEO", "Meta Tags", "Sitemap"},
					},
					{
						ID:        "web_public_pages",
						Label:     "Will there be public-facing pages?",
						Type:      model.QuestionToggle,
						VisibleIf: &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("web")},
					},
					{
						ID:        "web_rendering",
						Label:     "Preferred rendering strategy",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("web")},
						Options: []model.Option{
							{Value: "spa", Label: "SPA - Single Page Application"},
							{Value: "ssr", Label: "SSR - Server Side Rendering"},
							{Value: "ssg", Label: "SSG - Static Site Generation"},
							{Value: "hybrid", Label: "Hybrid - Mix of approaches"},
						},
						Tooltip: "SSR/SSG improve SEO and initial load time but add complexity",
					},
					{
						ID:          "cookie_consent",
						Label:       "Do you need cookie consent management?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "platforms", Operator: model.OpIncludes, Value: model.ListValue("web")},
						FeatureTags: []string{"Cookie Consent", "Privacy Controls"},
					},
				},
			},
			{
				ID:          "user_journeys",
				Title:       "Core User Journeys",
				Description: "Map out the primary flows users will take",
				Icon:        "🚀",
				Questions: []model.Question{
					{
						ID:          "primary_actions",
						Label:       "What are the 3-5 primary actions users take?",
						Type:        model.QuestionTextarea,
						Required:    true,
						Placeholder: "e.g., 1. Browse products\n2. Add to cart\n3. Checkout\n4. Track order\n5. Leave review",
					},
					{
						ID:    "onboarding_type",
						Label: "What type of onboarding do you need?",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "none", Label: "None - Direct access"},
							{Value: "simple", Label: "Simple - Quick tour"},
							{Value: "progressive", Label: "Progressive - Reveal features over time"},
							{Value: "wizard", Label: "Wizard - Step-by-step setup"},
							{Value: "personalized", Label: "Personalized - Based on user type"},
						},
						FeatureTags: []string{"Onboarding Flow", "User Progress Tracking"},
					},
					{
						ID:       "needs_backend",
						Label:    "Does your app need a backend/database?",
						Type:     model.QuestionToggle,
						Required: true,
					},
					{
						ID:        "api_type",
						Label:     "Preferred API architecture",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "needs_backend", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "rest", Label: "REST API"},
							{Value: "graphql", Label: "GraphQL"},
							{Value: "grpc", Label: "gRPC"},
							{Value: "realtime", Label: "Real-time (WebSockets/SSE)"},
							{Value: "hybrid", Label: "Hybrid approach"},
						},
					},
					{
						ID:        "database_type",
						Label:     "Database requirements",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "needs_backend", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "relational", Label: "Relational (PostgreSQL, MySQL)"},
							{Value: "document", Label: "Document (MongoDB, Firestore)"},
							{Value: "key_value", Label: "Key-Value (Redis)"},
							{Value: "search", Label: "Search (Elasticsearch, Algolia)"},
							{Value: "vector", Label: "Vector DB (Pinecone, Weaviate)"},
							{Value: "time_series", Label: "Time Series (InfluxDB)"},
						},
					},
					{
						ID:          "file_storage",
						Label:       "Do you need file/media storage?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "needs_backend", Operator: model.OpEquals, Value: model.BoolValue(true)},
						FeatureTags: []string{"File Storage", "Media Upload"},
					},
				},
			},
			{
				ID:          "authentication",
				Title:       "Authentication & Accounts",
				Description: "Set up user identity and access",
				Icon:        "🔐",
				Questions: []model.Question{
					{
						ID:       "auth_methods",
						Label:    "Which authentication methods do you need?",
						Type:     model.QuestionMultiselect,
						Required: true,
						Options: []model.Option{
							{Value: "email_password", Label: "Email & Password"},
							{Value: "magic_link", Label: "Magic Link (passwordless)"},
							{Value: "google", Label: "Google OAuth"},
							{Value: "apple", Label: "Apple Sign In"},
							{Value: "facebook", Label: "Facebook Login"},
							{Value: "github", Label: "GitHub OAuth"},
							{Value: "microsoft", Label: "Microsoft/Azure AD"},
							{Value: "sso", Label: "SSO (SAML/OIDC)"},
							{Value: "phone", Label: "Phone/SMS OTP"},
							{Value: "anonymous", Label: "Anonymous / Guest"},
						},
						FeatureTags: []string{"User Authentication", "Session Management"},
					},
					{
						ID:          "mfa_required",
						Label:       "Do you need Multi-Factor Authentication (MFA)?",
						Type:        model.QuestionToggle,
						Tooltip:     "Adds extra security for sensitive operations",
						FeatureTags: []string{"MFA", "Security Tokens"},
					},
					{
						ID:    "session_management",
						Label: "Session management needs",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "remember_me", Label: "Remember me option"},
							{Value: "multi_device", Label: "Multi-device sessions"},
							{Value: "session_list", Label: "View active sessions"},
							{Value: "force_logout", Label: "Force logout other sessions"},
							{Value: "inactivity_timeout", Label: "Inactivity timeout"},
						},
					},
					{
						ID:    "account_features",
						Label: "Account management features needed",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "password_reset", Label: "Password reset"},
							{Value: "email_change", Label: "Change email"},
							{Value: "delete_account", Label: "Account deletion"},
							{Value: "data_export", Label: "Data export (GDPR)"},
							{Value: "deactivate", Label: "Account deactivation"},
							{Value: "merge_accounts", Label: "Account merging"},
						},
					},
				},
			},
			{
				ID:          "social",
				Title:       "Social & Community",
				Description: "Add social features and community elements",
				Icon:        "💬",
				Questions: []model.Question{
					{
						ID:    "social_enabled",
						Label: "Does your app need social/community features?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "social_features",
						Label:     "Which social features do you need?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "social_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "likes", Label: "Likes / Reactions"},
							{Value: "comments", Label: "Comments"},
							{Value: "follow", Label: "Follow / Subscribe"},
							{Value: "share", Label: "Share / Repost"},
							{Value: "mentions", Label: "@Mentions"},
							{Value: "hashtags", Label: "Hashtags"},
							{Value: "feed", Label: "Activity Feed"},
							{Value: "stories", Label: "Stories / Ephemeral content"},
						},
						FeatureTags: []string{"Social Graph", "Activity Feed", "Engagement Metrics"},
					},
					{
						ID:        "feed_type",
						Label:     "What type of feed do you need?",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "social_features", Operator: model.OpIncludes, Value: model.ListValue("feed")},
						Options: []model.Option{
							{Value: "chronological", Label: "Chronological"},
							{Value: "algorithmic", Label: "Algorithmic / Ranked"},
							{Value: "mixed", Label: "Mixed (Following + Discover)"},
						},
						RiskLevel: model.RiskMedium,
					},
					{
						ID:          "trending",
						Label:       "Do you need trending/discover features?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "social_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						FeatureTags: []string{"Trending Algorithm", "Discovery Feed"},
					},
					{
						ID:    "ugc_enabled",
						Label: "Will users create content (UGC)?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "moderation_features",
						Label:     "Content moderation features needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "ugc_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "report", Label: "Report content"},
							{Value: "block", Label: "Block users"},
							{Value: "mute", Label: "Mute users"},
							{Value: "auto_mod", Label: "Auto-moderation (AI)"},
							{Value: "manual_review", Label: "Manual review queue"},
							{Value: "spam_filter", Label: "Spam filtering"},
							{Value: "word_filter", Label: "Word/phrase filtering"},
						},
						FeatureTags: []string{"Content Moderation", "Report System", "Block/Mute"},
					},
				},
			},
			{
				ID:          "content_media",
				Title:       "Content & Media",
				Description: "Define your content types and media handling",
				Icon:        "🎨",
				Questions: []model.Question{
					{
						ID:    "media_types",
						Label: "What types of media will users interact with?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "images", Label: "Images"},
							{Value: "video", Label: "Video"},
							{Value: "audio", Label: "Audio"},
							{Value: "documents", Label: "Documents (PDF, etc.)"},
							{Value: "rich_text", Label: "Rich Text / Articles"},
							{Value: "3d", Label: "3D Models / AR"},
						},
					},
					{
						ID:        "video_type",
						Label:     "Video handling approach",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "media_types", Operator: model.OpIncludes, Value: model.ListValue("video")},
						Options: []model.Option{
							{Value: "upload", Label: "File upload only"},
							{Value: "streaming", Label: "Streaming playback"},
							{Value: "live", Label: "Live streaming"},
							{Value: "recording", Label: "In-app recording"},
						},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"Video Processing", "Streaming Infrastructure"},
					},
					{
						ID:        "video_limits",
						Label:     "Video size/duration limits",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "media_types", Operator: model.OpIncludes, Value: model.ListValue("video")},
						Options: []model.Option{
							{Value: "short", Label: "Short clips (< 1 min)"},
							{Value: "medium", Label: "Medium (1-10 min)"},
							{Value: "long", Label: "Long form (> 10 min)"},
							{Value: "unlimited", Label: "No limits"},
						},
					},
					{
						ID:          "cdn_needed",
						Label:       "Do you need CDN for media delivery?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "media_types", Operator: model.OpHasValue},
						Tooltip:     "CDN improves load times globally",
						FeatureTags: []string{"CDN Integration", "Media Optimization"},
					},
					{
						ID:        "image_processing",
						Label:     "Image processing features needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "media_types", Operator: model.OpIncludes, Value: model.ListValue("images")},
						Options: []model.Option{
							{Value: "resize", Label: "Automatic resizing"},
							{Value: "crop", Label: "User cropping"},
							{Value: "filters", Label: "Filters / Effects"},
							{Value: "watermark", Label: "Watermarking"},
							{Value: "ocr", Label: "OCR / Text extraction"},
							{Value: "face_detection", Label: "Face detection"},
						},
					},
				},
			},
			{
				ID:          "chat_realtime",
				Title:       "Chat & Real-time",
				Description: "Configure messaging and real-time features",
				Icon:        "⚡",
				Questions: []model.Question{
					{
						ID:    "chat_enabled",
						Label: "Does your app need chat/messaging?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "chat_type",
						Label:     "What type of chat do you need?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "chat_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "one_on_one", Label: "1:1 Direct messages"},
							{Value: "group", Label: "Group chats"},
							{Value: "channels", Label: "Public channels"},
							{Value: "threads", Label: "Threaded replies"},
							{Value: "support", Label: "Customer support chat"},
							{Value: "bot", Label: "Chatbot integration"},
						},
						RiskLevel:   model.RiskMedium,
						FeatureTags: []string{"Chat System", "Message History"},
					},
					{
						ID:        "chat_features",
						Label:     "Chat features needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "chat_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "read_receipts", Label: "Read receipts"},
							{Value: "typing", Label: "Typing indicators"},
							{Value: "reactions", Label: "Message reactions"},
							{Value: "attachments", Label: "File attachments"},
							{Value: "voice", Label: "Voice messages"},
							{Value: "video_call", Label: "Video calls"},
							{Value: "screen_share", Label: "Screen sharing"},
							{Value: "encryption", Label: "End-to-end encryption"},
						},
						FeatureTags: []string{"Real-time Messaging", "Media Attachments"},
					},
					{
						ID:    "realtime_other",
						Label: "Other real-time features needed",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "presence", Label: "User presence (online/offline)"},
							{Value: "live_updates", Label: "Live data updates"},
							{Value: "collaboration", Label: "Real-time collaboration"},
							{Value: "cursors", Label: "Live cursors / Co-editing"},
							{Value: "sync", Label: "Cross-device sync"},
						},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"WebSocket Infrastructure", "Presence System"},
					},
				},
			},
			{
				ID:          "location_maps",
				Title:       "Location & Maps",
				Description: "Add geolocation and mapping features",
				Icon:        "📍",
				Questions: []model.Question{
					{
						ID:    "maps_enabled",
						Label: "Does your app need location/maps features?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "map_features",
						Label:     "Which map features do you need?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "maps_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "display", Label: "Display maps"},
							{Value: "markers", Label: "Location markers"},
							{Value: "search", Label: "Location search"},
							{Value: "geocoding", Label: "Address geocoding"},
							{Value: "directions", Label: "Directions / Routing"},
							{Value: "distance", Label: "Distance calculation"},
							{Value: "clustering", Label: "Marker clustering"},
						},
						FeatureTags: []string{"Map Integration", "Location Services"},
					},
					{
						ID:          "live_location",
						Label:       "Do you need live location tracking?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "maps_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"Live Location", "Location History"},
					},
					{
						ID:          "geofencing",
						Label:       "Do you need geofencing?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "maps_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Tooltip:     "Trigger actions when users enter/exit defined areas",
						RiskLevel:   model.RiskMedium,
						FeatureTags: []string{"Geofencing", "Location Triggers"},
					},
					{
						ID:        "map_provider",
						Label:     "Preferred map provider",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "maps_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "google", Label: "Google Maps"},
							{Value: "mapbox", Label: "Mapbox"},
							{Value: "apple", Label: "Apple Maps"},
							{Value: "osm", Label: "OpenStreetMap"},
							{Value: "here", Label: "HERE Maps"},
						},
					},
				},
			},
			{
				ID:          "booking_inventory",
				Title:       "Booking & Inventory",
				Description: "Configure reservations and stock management",
				Icon:        "📅",
				Questions: []model.Question{
					{
						ID:    "booking_enabled",
						Label: "Does your app need booking/scheduling features?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "booking_type",
						Label:     "What type of booking system?",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "booking_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "appointments", Label: "Appointments / Services"},
							{Value: "reservations", Label: "Table / Seat reservations"},
							{Value: "rentals", Label: "Rentals (daily/hourly)"},
							{Value: "events", Label: "Event tickets"},
							{Value: "classes", Label: "Classes / Workshops"},
						},
						FeatureTags: []string{"Booking System", "Availability Management"},
					},
					{
						ID:        "booking_features",
						Label:     "Booking features needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "booking_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "slots", Label: "Time slot management"},
							{Value: "capacity", Label: "Capacity limits"},
							{Value: "waitlist", Label: "Waitlist"},
							{Value: "recurring", Label: "Recurring bookings"},
							{Value: "cancellation", Label: "Cancellation policy"},
							{Value: "reminders", Label: "Booking reminders"},
							{Value: "calendar_sync", Label: "Calendar sync (Google, iCal)"},
							{Value: "buffer_time", Label: "Buffer time between bookings"},
						},
						RiskLevel: model.RiskMedium,
					},
					{
						ID:          "multi_location",
						Label:       "Do you need multi-location support?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "booking_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						FeatureTags: []string{"Multi-location", "Branch Management"},
					},
					{
						ID:    "inventory_enabled",
						Label: "Do you need inventory/stock management?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "inventory_features",
						Label:     "Inventory features needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "inventory_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "stock_tracking", Label: "Stock level tracking"},
							{Value: "low_stock_alerts", Label: "Low stock alerts"},
							{Value: "variants", Label: "Product variants (size, color)"},
							{Value: "bundles", Label: "Product bundles"},
							{Value: "barcode", Label: "Barcode/SKU scanning"},
							{Value: "warehouse", Label: "Multi-warehouse"},
						},
						FeatureTags: []string{"Inventory System", "Stock Management"},
					},
				},
			},
			{
				ID:          "payments",
				Title:       "Payments & Monetization",
				Description: "Set up payment processing and revenue models",
				Icon:        "💳",
				Questions: []model.Question{
					{
						ID:    "payments_enabled",
						Label: "Does your app need payment processing?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "payment_gateway",
						Label:     "Preferred payment gateway",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "stripe", Label: "Stripe"},
							{Value: "paypal", Label: "PayPal"},
							{Value: "square", Label: "Square"},
							{Value: "braintree", Label: "Braintree"},
							{Value: "adyen", Label: "Adyen"},
							{Value: "apple_pay", Label: "Apple Pay"},
							{Value: "google_pay", Label: "Google Pay"},
						},
						FeatureTags: []string{"Payment Processing", "Checkout Flow"},
					},
					{
						ID:        "payment_model",
						Label:     "Revenue model",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "one_time", Label: "One-time purchases"},
							{Value: "subscription", Label: "Subscriptions"},
							{Value: "marketplace", Label: "Marketplace (platform fees)"},
							{Value: "in_app", Label: "In-app purchases"},
							{Value: "freemium", Label: "Freemium model"},
							{Value: "credits", Label: "Credit/token system"},
							{Value: "tips", Label: "Tips / Donations"},
						},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"Revenue Model", "Billing System"},
					},
					{
						ID:        "currency_handling",
						Label:     "Currency requirements",
						Type:      model.QuestionSelect,
						VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "single", Label: "Single currency"},
							{Value: "multi_display", Label: "Multi-currency display"},
							{Value: "multi_process", Label: "Multi-currency processing"},
							{Value: "crypto", Label: "Cryptocurrency support"},
						},
					},
					{
						ID:        "payment_features",
						Label:     "Additional payment features",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "refunds", Label: "Refund handling"},
							{Value: "invoices", Label: "Invoice generation"},
							{Value: "receipts", Label: "Receipts"},
							{Value: "promo_codes", Label: "Promo codes / Discounts"},
							{Value: "saved_cards", Label: "Saved payment methods"},
							{Value: "split_payments", Label: "Split payments"},
							{Value: "payouts", Label: "Vendor payouts"},
							{Value: "tax", Label: "Tax calculation"},
						},
						FeatureTags: []string{"Order Management", "Financial Reports"},
					},
				},
			},
			{
				ID:          "notifications",
				Title:       "Notifications",
				Description: "Configure how users receive updates",
				Icon:        "🔔",
				Questions: []model.Question{
					{
						ID:    "notifications_enabled",
						Label: "Does your app need notifications?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "notification_channels",
						Label:     "Which notification channels?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "notifications_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "push", Label: "Push notifications"},
							{Value: "email", Label: "Email"},
							{Value: "sms", Label: "SMS"},
							{Value: "in_app", Label: "In-app notifications"},
							{Value: "slack", Label: "Slack"},
							{Value: "webhook", Label: "Webhooks"},
						},
						FeatureTags: []string{"Notification System", "Email Templates"},
					},
					{
						ID:        "notification_triggers",
						Label:     "What triggers notifications?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "notifications_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "transactional", Label: "Transactional (orders, receipts)"},
							{Value: "social", Label: "Social (likes, comments, follows)"},
							{Value: "marketing", Label: "Marketing / Promotional"},
							{Value: "reminders", Label: "Reminders / Scheduled"},
							{Value: "alerts", Label: "System alerts"},
							{Value: "digest", Label: "Digest / Summary"},
						},
					},
					{
						ID:          "notification_preferences",
						Label:       "Do users need notification preferences?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "notifications_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						FeatureTags: []string{"Notification Preferences", "Unsubscribe Flow"},
					},
				},
			},
			{
				ID:          "admin_operations",
				Title:       "Admin & Operations",
				Description: "Configure administrative capabilities",
				Icon:        "⚙️",
				Questions: []model.Question{
					{
						ID:    "admin_enabled",
						Label: "Do you need an admin panel?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "admin_modules",
						Label:     "Which admin modules do you need?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "admin_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "user_management", Label: "User management"},
							{Value: "content_management", Label: "Content management"},
							{Value: "order_management", Label: "Order management"},
							{Value: "analytics_dashboard", Label: "Analytics dashboard"},
							{Value: "settings", Label: "System settings"},
							{Value: "reports", Label: "Reports & Exports"},
							{Value: "support_tools", Label: "Support tools"},
						},
						FeatureTags: []string{"Admin Dashboard", "CRUD Operations"},
					},
					{
						ID:        "admin_features",
						Label:     "Additional admin features",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "admin_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "impersonation", Label: "User impersonation"},
							{Value: "audit_logs", Label: "Audit logs"},
							{Value: "bulk_actions", Label: "Bulk actions"},
							{Value: "data_export", Label: "Data export"},
							{Value: "feature_flags", Label: "Feature flags"},
							{Value: "maintenance_mode", Label: "Maintenance mode"},
						},
						RiskLevel:   model.RiskMedium,
						FeatureTags: []string{"Audit Trail", "Admin Tools"},
					},
					{
						ID:    "support_features",
						Label: "Customer support features",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "help_center", Label: "Help center / FAQ"},
							{Value: "ticket_system", Label: "Ticket system"},
							{Value: "live_chat", Label: "Live chat support"},
							{Value: "feedback", Label: "Feedback collection"},
							{Value: "bug_reporting", Label: "Bug reporting"},
						},
					},
				},
			},
			{
				ID:          "integrations",
				Title:       "Integrations & Devices",
				Description: "Connect with external services and devices",
				Icon:        "🔗",
				Questions: []model.Question{
					{
						ID:    "third_party_integrations",
						Label: "Which third-party integrations do you need?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "crm", Label: "CRM (Salesforce, HubSpot)"},
							{Value: "analytics", Label: "Analytics (GA, Mixpanel, Amplitude)"},
							{Value: "email_marketing", Label: "Email marketing (Mailchimp, SendGrid)"},
							{Value: "calendar", Label: "Calendar (Google, Outlook)"},
							{Value: "storage", Label: "Cloud storage (Dropbox, Google Drive)"},
							{Value: "social", Label: "Social media APIs"},
							{Value: "erp", Label: "ERP systems"},
							{Value: "accounting", Label: "Accounting (QuickBooks, Xero)"},
						},
						FeatureTags: []string{"Third-party Integrations", "API Connections"},
					},
					{
						ID:          "api_public",
						Label:       "Do you need a public API for third parties?",
						Type:        model.QuestionToggle,
						FeatureTags: []string{"Public API", "API Documentation", "Rate Limiting"},
					},
					{
						ID:          "webhooks_outgoing",
						Label:       "Do you need outgoing webhooks?",
						Type:        model.QuestionToggle,
						FeatureTags: []string{"Webhook System", "Event Notifications"},
					},
					{
						ID:    "device_integrations",
						Label: "Device/hardware integrations needed",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "printer", Label: "Printers"},
							{Value: "scanner", Label: "Barcode scanners"},
							{Value: "pos", Label: "POS terminals"},
							{Value: "iot", Label: "IoT devices"},
							{Value: "wearables", Label: "Wearables"},
							{Value: "smart_home", Label: "Smart home devices"},
						},
						RiskLevel: model.RiskHigh,
					},
				},
			},
			{
				ID:          "localization",
				Title:       "Localization & Accessibility",
				Description: "Make your app accessible to everyone",
				Icon:        "🌍",
				Questions: []model.Question{
					{
						ID:    "languages",
						Label: "Which languages do you need to support?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "en", Label: "English"},
							{Value: "es", Label: "Spanish"},
							{Value: "fr", Label: "French"},
							{Value: "de", Label: "German"},
							{Value: "pt", Label: "Portuguese"},
							{Value: "zh", Label: "Chinese"},
							{Value: "ja", Label: "Japanese"},
							{Value: "ar", Label: "Arabic (RTL)"},
							{Value: "other", Label: "Other languages"},
						},
						FeatureTags: []string{"i18n", "Translation System"},
					},
					{
						ID:          "rtl_support",
						Label:       "Do you need RTL (right-to-left) support?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "languages", Operator: model.OpIncludes, Value: model.ListValue("ar")},
						FeatureTags: []string{"RTL Layout"},
					},
					{
						ID:    "timezone_handling",
						Label: "How should timezones be handled?",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "single", Label: "Single timezone"},
							{Value: "user_tz", Label: "User timezone"},
							{Value: "multi_tz", Label: "Multiple business timezones"},
						},
					},
					{
						ID:    "accessibility_level",
						Label: "Accessibility compliance level",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "basic", Label: "Basic (keyboard navigation, alt text)"},
							{Value: "wcag_a", Label: "WCAG 2.1 Level A"},
							{Value: "wcag_aa", Label: "WCAG 2.1 Level AA"},
							{Value: "wcag_aaa", Label: "WCAG 2.1 Level AAA"},
						},
						FeatureTags: []string{"Accessibility", "Screen Reader Support"},
					},
					{
						ID:    "accessibility_features",
						Label: "Specific accessibility features",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "keyboard_nav", Label: "Full keyboard navigation"},
							{Value: "screen_reader", Label: "Screen reader optimization"},
							{Value: "high_contrast", Label: "High contrast mode"},
							{Value: "font_scaling", Label: "Font scaling"},
							{Value: "reduce_motion", Label: "Reduced motion"},
							{Value: "captions", Label: "Video captions"},
						},
					},
				},
			},
			{
				ID:          "ai_features",
				Title:       "AI Features",
				Description: "Add artificial intelligence capabilities",
				Icon:        "🤖",
				Questions: []model.Question{
					{
						ID:    "ai_enabled",
						Label: "Does your app need AI features?",
						Type:  model.QuestionToggle,
					},
					{
						ID:        "ai_use_cases",
						Label:     "Which AI use cases do you need?",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "ai_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "chatbot", Label: "AI Chatbot / Assistant"},
							{Value: "recommendations", Label: "Personalized recommendations"},
							{Value: "search", Label: "Semantic search"},
							{Value: "content_gen", Label: "Content generation"},
							{Value: "summarization", Label: "Text summarization"},
							{Value: "translation", Label: "AI translation"},
							{Value: "image_gen", Label: "Image generation"},
							{Value: "image_analysis", Label: "Image analysis"},
							{Value: "voice", Label: "Voice/Speech AI"},
							{Value: "prediction", Label: "Predictive analytics"},
						},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"AI Integration", "LLM System"},
					},
					{
						ID:          "ai_knowledge_base",
						Label:       "Do you need RAG / Knowledge base?",
						Type:        model.QuestionToggle,
						VisibleIf:   &model.Condition{QuestionID: "ai_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Tooltip:     "Retrieval-Augmented Generation allows AI to reference your data",
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"RAG System", "Vector Database", "Embeddings"},
					},
					{
						ID:        "ai_safety",
						Label:     "AI safety measures needed",
						Type:      model.QuestionMultiselect,
						VisibleIf: &model.Condition{QuestionID: "ai_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
						Options: []model.Option{
							{Value: "content_filter", Label: "Content filtering"},
							{Value: "rate_limit", Label: "Rate limiting"},
							{Value: "human_review", Label: "Human review option"},
							{Value: "prompt_injection", Label: "Prompt injection protection"},
							{Value: "logging", Label: "AI interaction logging"},
							{Value: "cost_limits", Label: "Cost/usage limits"},
						},
						FeatureTags: []string{"AI Safety", "Usage Controls"},
					},
				},
			},
			{
				ID:          "security_privacy",
				Title:       "Security & Privacy",
				Description: "Configure security requirements and compliance",
				Icon:        "🛡️",
				Questions: []model.Question{
					{
						ID:    "security_level",
						Label: "Required security level",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "standard", Label: "Standard (HTTPS, basic auth)"},
							{Value: "enhanced", Label: "Enhanced (encryption at rest, audit logs)"},
							{Value: "enterprise", Label: "Enterprise (SOC2, penetration testing)"},
							{Value: "regulated", Label: "Regulated (HIPAA, PCI-DSS, etc.)"},
						},
						FeatureTags: []string{"Security Architecture", "Encryption"},
					},
					{
						ID:    "compliance_requirements",
						Label: "Compliance requirements",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "gdpr", Label: "GDPR"},
							{Value: "ccpa", Label: "CCPA"},
							{Value: "hipaa", Label: "HIPAA"},
							{Value: "pci", Label: "PCI-DSS"},
							{Value: "soc2", Label: "SOC 2"},
							{Value: "iso27001", Label: "ISO 27001"},
						},
						RiskLevel:   model.RiskHigh,
						FeatureTags: []string{"Compliance", "Data Protection"},
					},
					{
						ID:    "data_handling",
						Label: "Special data handling needs",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "encryption", Label: "End-to-end encryption"},
							{Value: "data_residency", Label: "Data residency requirements"},
							{Value: "backup", Label: "Automated backups"},
							{Value: "retention", Label: "Data retention policies"},
							{Value: "anonymization", Label: "Data anonymization"},
							{Value: "right_to_delete", Label: "Right to deletion"},
						},
					},
					{
						ID:    "security_features",
						Label: "Security features needed",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "ip_allowlist", Label: "IP allowlisting"},
							{Value: "rate_limiting", Label: "Rate limiting"},
							{Value: "captcha", Label: "CAPTCHA protection"},
							{Value: "fraud_detection", Label: "Fraud detection"},
							{Value: "security_headers", Label: "Security headers"},
							{Value: "vulnerability_scan", Label: "Vulnerability scanning"},
						},
						FeatureTags: []string{"Security Features", "Threat Protection"},
					},
				},
			},
			{
				ID:          "analytics_kpis",
				Title:       "Analytics & KPIs",
				Description: "Define what you need to measure",
				Icon:        "📊",
				Questions: []model.Question{
					{
						ID:    "analytics_provider",
						Label: "Preferred analytics provider",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "google_analytics", Label: "Google Analytics"},
							{Value: "mixpanel", Label: "Mixpanel"},
							{Value: "amplitude", Label: "Amplitude"},
							{Value: "segment", Label: "Segment"},
							{Value: "posthog", Label: "PostHog"},
							{Value: "custom", Label: "Custom analytics"},
						},
						FeatureTags: []string{"Analytics", "Event Tracking"},
					},
					{
						ID:    "tracking_needs",
						Label: "What do you need to track?",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "page_views", Label: "Page views"},
							{Value: "user_events", Label: "User events / Actions"},
							{Value: "conversions", Label: "Conversion funnels"},
							{Value: "cohorts", Label: "Cohort analysis"},
							{Value: "attribution", Label: "Marketing attribution"},
							{Value: "revenue", Label: "Revenue metrics"},
							{Value: "errors", Label: "Error tracking"},
							{Value: "performance", Label: "Performance metrics"},
						},
					},
					{
						ID:    "reporting_needs",
						Label: "Reporting requirements",
						Type:  model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "dashboards", Label: "Real-time dashboards"},
							{Value: "scheduled_reports", Label: "Scheduled reports"},
							{Value: "custom_reports", Label: "Custom report builder"},
							{Value: "exports", Label: "Data exports"},
							{Value: "alerts", Label: "Automated alerts"},
						},
						FeatureTags: []string{"Reporting", "Dashboards"},
					},
					{
						ID:          "ab_testing",
						Label:       "Do you need A/B testing capabilities?",
						Type:        model.QuestionToggle,
						FeatureTags: []string{"A/B Testing", "Feature Flags", "Experimentation"},
					},
				},
			},
			{
				ID:          "review_export",
				Title:       "Review & Export",
				Description: "Review your requirements and export the scope",
				Icon:        "✅",
				Questions: []model.Question{
					{
						ID:    "timeline",
						Label: "Target launch timeline",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "1_month", Label: "Less than 1 month"},
							{Value: "1_3_months", Label: "1-3 months"},
							{Value: "3_6_months", Label: "3-6 months"},
							{Value: "6_12_months", Label: "6-12 months"},
							{Value: "over_12", Label: "Over 12 months"},
						},
					},
					{
						ID:    "budget_range",
						Label: "Budget range",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "startup", Label: "Startup (< $50K)"},
							{Value: "small", Label: "Small ($50K - $150K)"},
							{Value: "medium", Label: "Medium ($150K - $500K)"},
							{Value: "enterprise", Label: "Enterprise ($500K+)"},
						},
					},
					{
						ID:    "team_size",
						Label: "Expected development team size",
						Type:  model.QuestionSelect,
						Options: []model.Option{
							{Value: "solo", Label: "Solo developer"},
							{Value: "small", Label: "Small team (2-5)"},
							{Value: "medium", Label: "Medium team (6-15)"},
							{Value: "large", Label: "Large team (15+)"},
						},
					},
					{
						ID:          "additional_notes",
						Label:       "Any additional notes or requirements?",
						Type:        model.QuestionTextarea,
						Placeholder: "Anything else we should know about your project...",
					},
					{
						ID:          "open_questions",
						Label:       "What questions do you still have?",
						Type:        model.QuestionTextarea,
						Placeholder: "List any uncertainties or decisions that need more discussion...",
					},
				},
			},
		},
	}
}
