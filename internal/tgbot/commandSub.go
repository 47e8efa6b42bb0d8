package tgbot

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/powerrank/internal/service"
)

type SubCommand struct {
	subs      *subscriptions
	subscribe bool
}

func (c *SubCommand) Run(user User, _ string) (string, error) {
	if !c.subscribe {
		c.subs.Remove(user.ChatID)
		return "Unsubscribed from ranking updates", nil
	}
	if !c.subs.Add(user.ChatID) {
		return "Already subscribed", nil
	}
	return "Subscribed to ranking updates", nil
}

func (c *SubCommand) Help() string {
	if c.subscribe {
		return "Notify me when a new snapshot is imported"
	}
	return "Stop update notifications"
}

func (c *SubCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}

type SnapshotCommand struct {
	service *service.Service
}

func (c *SnapshotCommand) Run(_ User, _ string) (string, error) {
	snapshot, err := c.service.Snapshot()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Snapshot %s\nCreated: %s\nGroups: %d",
		snapshot.ID, snapshot.CreatedAt.Format("02.01.2006 15:04"), len(snapshot.Groups)), nil
}

func (c *SnapshotCommand) Help() string {
	return "Current snapshot id and import time"
}

func (c *SnapshotCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(adminOnly...)
}
