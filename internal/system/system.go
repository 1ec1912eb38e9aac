// Package system exposes the appliance admin actions: restarting the dashboard
// service and rebooting the host.
package system

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o systemfakes/fake_commander.go . Commander

// Commander starts a process without waiting for it to finish.
type Commander interface {
	Start(name string, args ...string) error
}

// ExecCommander runs commands on the host.
type ExecCommander struct{}

func (ExecCommander) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

type Controller struct {
	service   string
	commander Commander
	log       zerolog.Logger
}

func NewController(service string, commander Commander, log zerolog.Logger) *Controller {
	if commander == nil {
		commander = ExecCommander{}
	}
	return &Controller{service: service, commander: commander, log: log}
}

// Restart asks systemd to restart the dashboard service.
func (c *Controller) Restart(ctx context.Context) error {
	return c.start(ctx, "sudo", "systemctl", "restart", c.service)
}

// Reboot reboots the host.
func (c *Controller) Reboot(ctx context.Context) error {
	return c.start(ctx, "sudo", "reboot")
}

func (c *Controller) start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.log.Warn().Str("command", name).Strs("args", args).Msg("Running system command")
	if err := c.commander.Start(name, args...); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}
