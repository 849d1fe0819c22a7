package service

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/herdsourcing/backend/internal/models"
)

const (
	// DefaultFeedLimit bounds the merged feed.
	DefaultFeedLimit = 10

	// recentProjectCount limits how many project-created items feed in.
	recentProjectCount = 5
)

// BuildActivityFeed derives a merged, time-ordered feed from project and
// conversation snapshots. Pure function: inputs are not mutated, ids are
// deterministic from the source events, and repeated calls over
// unchanged inputs yield identical output.
//
// The five most recent projects each contribute a project-created item;
// every join-request message contributes a join-request item. Items are
// sorted by timestamp descending with ties keeping input order, i.e.
// project-created ahead of join-request, then truncated to limit.
func BuildActivityFeed(projects []*models.Project, conversations []*models.Conversation, limit int) []models.ActivityItem {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	recent := make([]*models.Project, len(projects))
	copy(recent, projects)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentProjectCount {
		recent = recent[:recentProjectCount]
	}

	items := make([]models.ActivityItem, 0, len(recent))
	for _, project := range recent {
		items = append(items, models.ActivityItem{
			ID:          "activity-project-" + project.ID.String(),
			Type:        models.ActivityProjectCreated,
			Description: fmt.Sprintf("%s created %q", project.Owner.DisplayName, project.Title),
			Timestamp:   project.CreatedAt,
			ProjectID:   &project.ID,
			UserID:      &project.Owner.ID,
		})
	}

	for _, conv := range conversations {
		joinRequests := lo.Filter(conv.Messages, func(m models.Message, _ int) bool {
			return m.Type == models.MessageTypeJoinRequest
		})
		for _, msg := range joinRequests {
			msg := msg
			items = append(items, models.ActivityItem{
				ID:          "activity-join-" + msg.ID.String(),
				Type:        models.ActivityJoinRequest,
				Description: fmt.Sprintf("%s sent a join request", msg.Sender.DisplayName),
				Timestamp:   msg.CreatedAt,
				ProjectID:   msg.ProjectID,
				UserID:      &msg.Sender.ID,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
