package media

import (
	"context"

	"pomoplay/internal/domain"
)

// NoopController implements domain.MediaController with no-op behavior.
// It backs dry runs and non-macOS environments. Queries report success so
// a dry run follows the same path a real session would.
type NoopController struct{}

var _ domain.MediaController = NoopController{}

// NewNoopController creates an inert media controller.
func NewNoopController() NoopController {
	return NoopController{}
}

func (NoopController) GetVolume(context.Context) int               { return FallbackVolume }
func (NoopController) SetVolume(context.Context, int)              {}
func (NoopController) PlayPlaylist(context.Context, string)        {}
func (NoopController) PausePlayback(context.Context)               {}
func (NoopController) ResumePlayback(context.Context)              {}
func (NoopController) StopPlayback(context.Context)                {}
func (NoopController) PlaylistExists(context.Context, string) bool { return true }
func (NoopController) SearchCatalog(context.Context, string)       {}
func (NoopController) ConfigurePlayback(context.Context)           {}
func (NoopController) OpenURL(context.Context, string)             {}
func (NoopController) PlayChime(context.Context)                   {}
