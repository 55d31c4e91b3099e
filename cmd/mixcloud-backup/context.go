package main

import (
	"strings"
	"sync"

	"github.com/ikirmitz/mixcloud-backup/internal/config"
	"github.com/ikirmitz/mixcloud-backup/internal/console"
)

// commandContext carries lazily loaded settings and the shared
// console across subcommands.
type commandContext struct {
	configFlag  *string
	noColorFlag *bool
	verboseFlag *bool

	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error

	consoleOnce sync.Once
	console     *console.Console
}

func newCommandContext(configFlag *string, noColorFlag, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		noColorFlag: noColorFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureSettings() (*config.Settings, error) {
	c.settingsOnce.Do(func() {
		path := config.DefaultPath()
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.settings, c.settingsErr = config.Load(path)
	})
	return c.settings, c.settingsErr
}

func (c *commandContext) ui() *console.Console {
	c.consoleOnce.Do(func() {
		c.console = console.New(*c.noColorFlag, *c.verboseFlag)
	})
	return c.console
}
