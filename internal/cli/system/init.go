package system

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists." short:"f"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
	}

	fmt.Println("flowdeck storage initialized.")
	return nil
}
