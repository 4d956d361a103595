package catalog

import "github.com/Lightzzz011/project-showcase-api/internal/projects/domain"

// Seed returns the built-in portfolio records.
func Seed() []domain.Project {
	return []domain.Project{
		{
			ID:          "proj-1",
			Title:       "Smart Queue Manager",
			Description: "Computer-vision powered queue analysis system using YOLOv8 for cart detection.",
			Tags:        []string{"Python", "YOLOv8", "Machine Learning", "Backend"},
			Demo:        domain.DemoNone,
			Repo:        "https://github.com/Lightzzz011/Smart-Queue-Manager",
			Excerpt:     "Trained a custom YOLOv8 model for cart detection and integrated the inference pipeline into the backend workflow.",
			CreatedAt:   domain.MustDate("2025-10-12"),
			Difficulty:  domain.DifficultyAdvanced,
		},
		{
			ID:          "proj-2",
			Title:       "Crazy Chess Analyzer",
			Description: "A chess PGN analyzer that computes a 'craziness score' based on moves and patterns.",
			Tags:        []string{"JavaScript", "Chess.js", "Analysis"},
			Demo:        domain.DemoNone,
			Repo:        "https://github.com/Lightzzz011/crazyyychess",
			Excerpt:     "Implemented a scoring algorithm that evaluates how unconventional or chaotic a chess game is using PGN parsing.",
			CreatedAt:   domain.MustDate("2025-06-20"),
			Difficulty:  domain.DifficultyIntermediate,
		},
		{
			ID:          "proj-3",
			Title:       "DriversProject",
			Description: "Full-stack project for driver-related management with a hosted live frontend.",
			Tags:        []string{"React", "Next.js", "Frontend"},
			Demo:        "https://driveshort-1mp9uy0f2-sai-srinivas-projects-112b70ed.vercel.app/",
			Repo:        "https://github.com/Lightzzz011/DriversProject",
			Excerpt:     "Developed the entire project end-to-end including UI, routing, data handling and deployments.",
			CreatedAt:   domain.MustDate("2025-07-15"),
			Difficulty:  domain.DifficultyBeginner,
		},
	}
}
