package store

import (
	"fmt"

	"github.com/herdsourcing/backend/internal/models"
)

// LoadSeed populates empty stores with a small development fixture so
// the frontend has something to render before anyone registers.
func LoadSeed(users *UserDirectory, projects *ProjectStore, conversations *ConversationStore) error {
	jordan := users.Resolve("jlee@ucdavis.edu")
	priya := users.Resolve("ppatel@ucdavis.edu")
	sarah := users.Resolve("skim@ucdavis.edu")

	sustainability, err := projects.Create(jordan, models.CreateProjectRequest{
		Title:       "Campus Sustainability App",
		Description: "Build a mobile app to track and gamify sustainability efforts across campus.",
		Status:      models.StatusOpen,
		Tags:        []string{"React Native", "Design", "Beginner-friendly"},
		Roles: []models.RoleInput{
			{Title: "Frontend Developer", Description: "Build components for the dashboard and user profiles"},
			{Title: "UX Designer", Description: "Design the interface and user flows for gamification features"},
		},
	})
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	if len(sustainability.Roles) > 1 {
		if _, err := projects.AssignRole(sustainability.ID, sustainability.Roles[1].ID, sarah); err != nil {
			return fmt.Errorf("seed role assignment: %w", err)
		}
	}

	if _, err := projects.Create(priya, models.CreateProjectRequest{
		Title:       "AI Study Group Matcher",
		Description: "Match students for study groups based on course schedules, learning styles, and availability.",
		Status:      models.StatusInProgress,
		Tags:        []string{"AI", "Python", "Backend"},
	}); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	name := "Campus Sustainability App - Frontend Developer"
	if _, err := conversations.Create(jordan.ID, []string{sarah.Email}, &name); err != nil {
		return fmt.Errorf("seed conversations: %w", err)
	}

	return nil
}
