package tgbot

import (
	"errors"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/powerrank/internal/service"
)

var ErrBadRequest = errors.New("unknown command, see /help")

type Command interface {
	Run(user User, args string) (string, error)
	Help() string
	Permission() mapset.Set[UserRole]
}

var (
	everyone  = []UserRole{RoleAdmin, RoleUser}
	adminOnly = []UserRole{RoleAdmin}
)

type Commands struct {
	list map[string]Command
}

func NewCommands(svc *service.Service, subs *subscriptions) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":     hc,
			"start":    hc,
			"top":      &TopCommand{service: svc},
			"enhanced": &EnhancedCommand{service: svc},
			"compare":  &CompareCommand{service: svc},
			"info":     &InfoCommand{service: svc},
			"snapshot": &SnapshotCommand{service: svc},
			"sub":      &SubCommand{subs: subs, subscribe: true},
			"unsub":    &SubCommand{subs: subs},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user User, cmd string, args string) (string, error) {
	command, ok := uc.list[strings.ToLower(cmd)]
	if !ok || !command.Permission().Contains(user.Role) {
		return "", ErrBadRequest
	}
	return command.Run(user, strings.TrimSpace(args))
}

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(user User, args string) (string, error) {
	if command, ok := c.commands[strings.TrimPrefix(args, "/")]; ok && command.Permission().Contains(user.Role) {
		return command.Help(), nil
	}
	names := make([]string, 0, len(c.commands))
	for name, command := range c.commands {
		if command.Permission().Contains(user.Role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Use /help <command> for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}

func (c *HelpCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}
