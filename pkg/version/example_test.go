package version_test

import (
	"fmt"

	"github.com/matzehuels/depscan/pkg/version"
)

func ExampleNormalize() {
	fmt.Println(version.Normalize("^1.3.0"))
	fmt.Println(version.Normalize("~2.0.1"))
	fmt.Println(version.Normalize("1.3.0"))
	// Output:
	// 1.3.0
	// 2.0.1
	// 1.3.0
}

func ExampleIsOlder() {
	older, _ := version.IsOlder("1.3.0", "1.3.1")
	fmt.Println(older)

	older, _ = version.IsOlder("1.3.1", "1.3.1")
	fmt.Println(older)

	_, err := version.IsOlder("2.25", "2.32.3")
	fmt.Println(err != nil)
	// Output:
	// true
	// false
	// true
}
