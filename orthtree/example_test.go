package orthtree_test

import (
	"fmt"

	"github.com/aukilabs/orthtree/featureflag"
	"github.com/aukilabs/orthtree/orthtree"
	"github.com/aukilabs/orthtree/vector"
)

func Example() {
	tree := orthtree.NewQuadtree[float64](orthtree.WithFeatureFlags(featureflag.Of(
		featureflag.FlagDisableGenerationLogs,
	)))

	err := tree.Generate(vector.MustOf(0.0, 0.0), vector.MustOf(4.0, 4.0), 1,
		orthtree.SubdivideIf(func(n orthtree.Node[float64]) bool {
			return true
		}))
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, n := range tree.All() {
		fmt.Println(i, n.Level(), n.Pos(), n.Size(), n.IsLeaf())
	}
	// Output:
	// 0 0 (0, 0) (4, 4) false
	// 1 1 (0, 0) (2, 2) true
	// 2 1 (2, 0) (2, 2) true
	// 3 1 (0, 2) (2, 2) true
	// 4 1 (2, 2) (2, 2) true
}

// Nodes close to a camera are subdivided further, which selects a level of
// detail for every region.
func ExampleTree_Generate_levelOfDetail() {
	tree := orthtree.NewQuadtree[float32](orthtree.WithFeatureFlags(featureflag.Of(
		featureflag.FlagDisableGenerationLogs,
	)))
	camera := vector.MustOf[float32](10, 10)

	err := tree.Generate(vector.MustOf[float32](0, 0), vector.MustOf[float32](512, 512), 8,
		orthtree.SubdivisionFunc[float32](func(n orthtree.Node[float32]) (bool, error) {
			dist, err := camera.Distance(n.Centre())
			if err != nil {
				return false, err
			}
			return dist < n.Size().At(0)*2, nil
		}))
	if err != nil {
		fmt.Println(err)
		return
	}

	leaf, _ := tree.Locate(camera)
	fmt.Println(tree.Depth(), leaf.Level(), leaf.Size())
	// Output:
	// 8 8 (2, 2)
}
