package store

import (
	"time"

	"github.com/printcraft-dev/printcraft/internal/models"
)

// seedTemplates returns the fixed template catalog: 6 banner, 4 leaflet and
// 4 poster templates. The catalog is identical across instances and restarts.
func seedTemplates() []models.Template {
	now := time.Now().UTC()
	return []models.Template{
		// Banner templates
		{
			ID:          "banner-1",
			Name:        "Business Promotion",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description: "Professional banner for business events",
			DesignData: map[string]any{
				"backgroundColor": "#6366F1",
				"textColor":       "#FFFFFF",
				"layout":          "centered",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "banner-2",
			Name:        "Event Celebration",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description: "Vibrant banner for parties and events",
			DesignData: map[string]any{
				"backgroundColor": "#F59E0B",
				"textColor":       "#1F2937",
				"layout":          "dynamic",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "banner-3",
			Name:        "Sale & Discount",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description: "Eye-catching banner for promotions",
			DesignData: map[string]any{
				"backgroundColor": "#EF4444",
				"textColor":       "#FFFFFF",
				"layout":          "bold",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "banner-4",
			Name:        "Technology",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://pixabay.com/get/g2eabd38f5ed7a4dea942603b08329fd58af282961da2a919eedcd39cef6ebcedf57c1b8f3a9e17d5bf2dd37d66beb8e0bb56298a3b24e40f18244bb30b492c84_1280.jpg",
			Description: "Modern banner for tech companies",
			DesignData: map[string]any{
				"backgroundColor": "#1F2937",
				"textColor":       "#10B981",
				"layout":          "modern",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "banner-5",
			Name:        "Restaurant",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description: "Delicious banner for food businesses",
			DesignData: map[string]any{
				"backgroundColor": "#F97316",
				"textColor":       "#FFFFFF",
				"layout":          "appetizing",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "banner-6",
			Name:        "Fitness & Health",
			Category:    models.CategoryBanner,
			Thumbnail:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description: "Energetic banner for gyms and wellness",
			DesignData: map[string]any{
				"backgroundColor": "#10B981",
				"textColor":       "#FFFFFF",
				"layout":          "energetic",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		// Leaflet templates
		{
			ID:          "leaflet-1",
			Name:        "Corporate",
			Category:    models.CategoryLeaflet,
			Thumbnail:   "https://images.unsplash.com/photo-1586953208448-b95a79798f07?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Professional business leaflet",
			DesignData: map[string]any{
				"backgroundColor": "#FFFFFF",
				"textColor":       "#1F2937",
				"layout":          "professional",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "leaflet-2",
			Name:        "Real Estate",
			Category:    models.CategoryLeaflet,
			Thumbnail:   "https://images.unsplash.com/photo-1560518883-ce09059eeffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Property showcase leaflet",
			DesignData: map[string]any{
				"backgroundColor": "#F3F4F6",
				"textColor":       "#374151",
				"layout":          "showcase",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "leaflet-3",
			Name:        "Medical",
			Category:    models.CategoryLeaflet,
			Thumbnail:   "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Healthcare information leaflet",
			DesignData: map[string]any{
				"backgroundColor": "#DBEAFE",
				"textColor":       "#1E40AF",
				"layout":          "clean",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "leaflet-4",
			Name:        "Educational",
			Category:    models.CategoryLeaflet,
			Thumbnail:   "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500",
			Description: "Learning and training leaflet",
			DesignData: map[string]any{
				"backgroundColor": "#FEF3C7",
				"textColor":       "#92400E",
				"layout":          "academic",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		// Poster templates
		{
			ID:          "poster-1",
			Name:        "Movie/Entertainment",
			Category:    models.CategoryPoster,
			Thumbnail:   "https://pixabay.com/get/g1451eeb987d53ae4b78053847056ac4fcd38fe84ea7dd8ad26e19e1879092703fb024bf7d01e152b9904720492866e5706da13e05341a16fceb9dbabff100449_1280.jpg",
			Description: "Cinematic poster design",
			DesignData: map[string]any{
				"backgroundColor": "#000000",
				"textColor":       "#F59E0B",
				"layout":          "dramatic",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "poster-2",
			Name:        "Concert/Music",
			Category:    models.CategoryPoster,
			Thumbnail:   "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Musical event poster",
			DesignData: map[string]any{
				"backgroundColor": "#7C3AED",
				"textColor":       "#FFFFFF",
				"layout":          "musical",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "poster-3",
			Name:        "Motivational",
			Category:    models.CategoryPoster,
			Thumbnail:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Inspirational poster design",
			DesignData: map[string]any{
				"backgroundColor": "#059669",
				"textColor":       "#FFFFFF",
				"layout":          "inspiring",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
		{
			ID:          "poster-4",
			Name:        "Sports",
			Category:    models.CategoryPoster,
			Thumbnail:   "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Athletic event poster",
			DesignData: map[string]any{
				"backgroundColor": "#DC2626",
				"textColor":       "#FFFFFF",
				"layout":          "dynamic",
				"fonts":           []string{"Inter"},
			},
			CreatedAt: now,
		},
	}
}
