package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/datatypes"
)

const (
	DemoArtistID = "user_artist_demo"
	DemoAdminID  = "user_admin_demo"
)

// SeedDemo populates demo users, plans and addons on an empty database.
// Existing data is left untouched.
func SeedDemo() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding demo data")
	now := time.Now()

	artistAvatar := "https://api.dicebear.com/7.x/avataaars/svg?seed=jordan"
	adminAvatar := "https://api.dicebear.com/7.x/avataaars/svg?seed=alex"
	users := []models.User{
		{ID: DemoArtistID, Email: "artist@demo.com", Name: "Jordan Rivers", AvatarURL: &artistAvatar, Role: models.RoleArtist, CreatedAt: now.AddDate(0, 0, -90)},
		{ID: DemoAdminID, Email: "admin@demo.com", Name: "Alex Morgan", AvatarURL: &adminAvatar, Role: models.RoleAdmin, CreatedAt: now.AddDate(0, 0, -180)},
	}
	if err := DB.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	genre := "Indie Pop / Electronic"
	bio := "Emerging indie-electronic artist blending dreamy synths with heartfelt lyrics."
	listeners := 23450
	followers := 15200
	profile := models.ArtistProfile{
		ID:     uuid.New().String(),
		UserID: DemoArtistID,
		Genre:  &genre,
		Bio:    &bio,
		Goals:  datatypes.NewJSONSlice([]string{"Release EP by Q2", "Reach 50k monthly listeners", "Book 10 live shows"}),
		SocialLinks: datatypes.NewJSONType(map[string]string{
			"spotify":   "https://spotify.com/artist/demo",
			"instagram": "@jordanrivers",
		}),
		MonthlyListeners: &listeners,
		Followers:        &followers,
		CreatedAt:        now.AddDate(0, 0, -90),
	}
	if err := DB.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to seed artist profile: %w", err)
	}

	if err := seedPlans(now); err != nil {
		return err
	}
	if err := seedAddons(now); err != nil {
		return err
	}

	periodStart := now.AddDate(0, 0, -15)
	periodEnd := now.AddDate(0, 0, 15)
	sub := models.Subscription{
		ID:                 uuid.New().String(),
		UserID:             DemoArtistID,
		PlanID:             "plan_premium",
		Status:             models.SubscriptionActive,
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		CreatedAt:          now.AddDate(0, 0, -60),
	}
	if err := DB.Create(&sub).Error; err != nil {
		return fmt.Errorf("failed to seed subscription: %w", err)
	}

	slog.Info("demo data seeded", "users", len(users))
	return nil
}

func seedPlans(now time.Time) error {
	standardDesc := "Essential services for emerging artists ready to grow their presence."
	premiumDesc := "Comprehensive support for artists ready to level up their career."
	deluxeDesc := "Full-service agency partnership for established artists."
	standardSLA := "48 hours"
	premiumSLA := "24 hours"
	deluxeSLA := "Same day"
	standardYearly := 4990.0
	premiumYearly := 9990.0
	deluxeYearly := 24990.0

	plans := []models.Plan{
		{
			ID: "plan_standard", Name: "Standard", Slug: "standard", Description: &standardDesc,
			PriceMonthly: 499, PriceYearly: &standardYearly,
			Features: datatypes.NewJSONSlice([]string{
				"Monthly content calendar",
				"Social media management (2 platforms)",
				"Basic analytics reporting",
				"Email support (48h response)",
			}),
			Deliverables: datatypes.NewJSONSlice([]models.PlanDeliverable{
				{Name: "Social posts", Count: 12},
				{Name: "Story designs", Count: 8},
				{Name: "Monthly report", Count: 1},
			}),
			SessionsPerMonth: 1, ResponseSLA: &standardSLA, SortOrder: 1, Active: true,
			CreatedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID: "plan_premium", Name: "Premium", Slug: "premium", Description: &premiumDesc,
			PriceMonthly: 999, PriceYearly: &premiumYearly,
			Features: datatypes.NewJSONSlice([]string{
				"Everything in Standard",
				"Social media management (4 platforms)",
				"Spotify playlist pitching",
				"Priority support (24h response)",
				"Bi-weekly strategy calls",
			}),
			Deliverables: datatypes.NewJSONSlice([]models.PlanDeliverable{
				{Name: "Social posts", Count: 24},
				{Name: "Story designs", Count: 16},
				{Name: "Press releases", Count: 2},
				{Name: "Monthly report", Count: 1},
			}),
			SessionsPerMonth: 2, ResponseSLA: &premiumSLA, IsPopular: true, SortOrder: 2, Active: true,
			CreatedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID: "plan_deluxe", Name: "Deluxe", Slug: "deluxe", Description: &deluxeDesc,
			PriceMonthly: 2499, PriceYearly: &deluxeYearly,
			Features: datatypes.NewJSONSlice([]string{
				"Everything in Premium",
				"Spotify campaign management",
				"PR & media outreach",
				"Ad campaign management",
				"Weekly strategy calls",
			}),
			Deliverables: datatypes.NewJSONSlice([]models.PlanDeliverable{
				{Name: "Social posts", Count: 40},
				{Name: "Story designs", Count: 30},
				{Name: "Press releases", Count: 4},
				{Name: "Monthly report", Count: 1},
			}),
			SessionsPerMonth: 4, ResponseSLA: &deluxeSLA, SortOrder: 3, Active: true,
			CreatedAt: now.AddDate(-1, 0, 0),
		},
	}
	if err := DB.Create(&plans).Error; err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}
	return nil
}

type seedAddon struct {
	name         string
	slug         string
	category     string
	description  string
	price        float64
	deliveryDays int
	scope        []string
}

var demoAddons = []seedAddon{
	{"Instagram Audit & Strategy", "ig-audit", "social", "Deep-dive analysis of your Instagram presence with actionable growth strategy.", 299, 5,
		[]string{"Profile optimization recommendations", "Content strategy plan", "Hashtag research", "Competitor analysis", "Growth roadmap"}},
	{"TikTok Launch Package", "tiktok-launch", "social", "Everything you need to launch and grow on TikTok.", 599, 7,
		[]string{"Account setup & optimization", "10 video concepts", "Trending audio strategy", "Posting schedule", "First 5 video scripts"}},
	{"Spotify Profile Optimization", "spotify-optimization", "spotify", "Maximize your Spotify presence for playlist consideration.", 199, 3,
		[]string{"Artist bio writing", "Profile image recommendations", "Canvas strategy", "Playlist pitch template", "About section optimization"}},
	{"Playlist Pitching Campaign", "playlist-pitching", "spotify", "Professional pitching to 50+ independent playlist curators.", 399, 14,
		[]string{"Curator research", "Personalized pitches to 50+ playlists", "Follow-up management", "Placement report"}},
	{"Visual Identity Package", "visual-identity", "branding", "Complete visual branding for your artist project.", 1299, 14,
		[]string{"Logo design (3 concepts)", "Color palette", "Typography system", "Social media templates", "Brand guidelines PDF"}},
	{"Press Release + Distribution", "press-release", "pr", "Professional press release with distribution to music media.", 349, 5,
		[]string{"Professionally written release", "Distribution to 100+ outlets", "Media list targeting", "Coverage report"}},
	{"Spotify Ad Campaign", "spotify-ads", "ads", "Managed Spotify advertising campaign for your release.", 699, 30,
		[]string{"Ad creative development", "Audience targeting setup", "Campaign management (30 days)", "Performance reporting"}},
	{"Release Strategy Session", "release-strategy", "strategy", "90-minute strategy session for your upcoming release.", 249, 1,
		[]string{"Pre-call questionnaire", "90-minute video call", "Release timeline", "Marketing checklist", "Follow-up notes"}},
}

func seedAddons(now time.Time) error {
	addons := make([]models.Addon, 0, len(demoAddons))
	for i, a := range demoAddons {
		desc := a.description
		addons = append(addons, models.Addon{
			ID:           uuid.New().String(),
			Name:         a.name,
			Slug:         a.slug,
			Category:     a.category,
			Description:  &desc,
			Price:        a.price,
			DeliveryDays: a.deliveryDays,
			Scope:        datatypes.NewJSONSlice(a.scope),
			Active:       true,
			SortOrder:    i + 1,
			CreatedAt:    now.AddDate(-1, 0, 0),
		})
	}
	if err := DB.Create(&addons).Error; err != nil {
		return fmt.Errorf("failed to seed addons: %w", err)
	}
	return nil
}
