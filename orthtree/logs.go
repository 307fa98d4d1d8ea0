package orthtree

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/orthtree/featureflag"
)

const (
	// TreeIDTag is the log tag holding the tree identifier.
	TreeIDTag = "tree_id"

	// TreeNameTag is the log tag holding the tree name.
	TreeNameTag = "tree_name"
)

func (t *Tree[T]) logGeneration(maxDepth int, elapsed time.Duration) {
	t.flags.IfNotSet(featureflag.FlagDisableGenerationLogs, func() {
		view := t.View()

		leaves := 0
		for range view.Leaves() {
			leaves++
		}

		logs.WithTag(TreeIDTag, t.id).
			WithTag(TreeNameTag, t.name).
			WithTag("generation", t.generation).
			WithTag("dims", t.dims).
			WithTag("max_depth", maxDepth).
			WithTag("depth", view.Depth()).
			WithTag("nodes", view.Len()).
			WithTag("leaves", leaves).
			WithTag("level_counts", view.LevelCounts()).
			WithTag("duration", elapsed.String()).
			Debug("tree generated")
	})
}

func (t *Tree[T]) logGenerationFailure(err error, maxDepth int) {
	t.flags.IfNotSet(featureflag.FlagDisableGenerationLogs, func() {
		logs.WithTag(TreeIDTag, t.id).
			WithTag(TreeNameTag, t.name).
			WithTag("generation", t.generation).
			WithTag("max_depth", maxDepth).
			Debug(err)
	})
}
