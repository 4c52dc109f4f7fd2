package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/flowdeck-app/flowdeck/internal/notify"
)

// Console writes notifications to a writer instead of the tray process.
// Used in headless environments and by dry runs.
type Console struct {
	Out io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) Show(title, body string, actions []notify.ActionDescriptor) error {
	if _, err := fmt.Fprintf(c.Out, "%s\n", title); err != nil {
		return err
	}
	if body != title {
		if _, err := fmt.Fprintf(c.Out, "%s\n", body); err != nil {
			return err
		}
	}
	for _, a := range actions {
		if _, err := fmt.Fprintf(c.Out, "  [%s] %s\n", a.Action, a.Label); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) Play(sound string, volume int) error {
	_, err := fmt.Fprintf(c.Out, "(sound: %s at %d%%)\n", sound, volume)
	return err
}
