package activelist_test

import (
	"fmt"

	"github.com/katalvlaran/viewshed/activelist"
)

// ExampleList_MaxGradientAtOrBelow shows the query the sweep asks at every
// target: the steepest obstruction no farther than the target itself.
func ExampleList_MaxGradientAtOrBelow() {
	l := activelist.New()
	_ = l.Insert(1.0, 10, 0.20) // near, gentle
	_ = l.Insert(2.0, 11, 0.75) // mid, steep
	_ = l.Insert(4.0, 12, 0.50) // far

	fmt.Println(l.MaxGradientAtOrBelow(1.5))
	fmt.Println(l.MaxGradientAtOrBelow(3.0))
	_ = l.Delete(2.0, 11)
	fmt.Println(l.MaxGradientAtOrBelow(5.0))

	// Output:
	// 0.2
	// 0.75
	// 0.5
}
