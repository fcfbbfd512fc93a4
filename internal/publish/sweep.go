package publish

import (
	"context"

	"cratebump/internal/logging"
)

// Run attempts to publish every directory, re-sweeping the still
// unpublished ones until a full sweep makes zero additional successes.
// Worst case is len(dirs) sweeps; each one publishes at least one new
// directory or ends the loop.
func Run(ctx context.Context, dirs []string, run Runner) []Status {
	log := logging.Get(logging.CategoryPublish)

	states := make([]Status, len(dirs))
	for i, d := range dirs {
		states[i] = Status{Dir: d}
	}

	for sweep := 1; sweep <= len(states); sweep++ {
		progress := false
		for i := range states {
			if states[i].Published {
				continue
			}
			if err := run(ctx, states[i].Dir); err != nil {
				log.Debugw("publish attempt failed",
					"sweep", sweep, "dir", states[i].Dir, "error", err)
				continue
			}
			states[i].Published = true
			progress = true
			log.Debugw("published", "sweep", sweep, "dir", states[i].Dir)
		}
		if !progress {
			log.Debugw("sweep made no progress, stopping", "sweep", sweep)
			break
		}
	}

	return states
}
