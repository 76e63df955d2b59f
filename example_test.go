package enumset_test

import (
	"fmt"

	"github.com/zero-day-ai/enumset"
)

func ExampleSet_Resolve() {
	colors := enumset.New("color")
	red := colors.MustDefine("DARK_RED", "crimson")

	v, err := colors.Resolve("Dark-Red")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v == red, v.Name())

	_, err = colors.Resolve("mauve")
	fmt.Println(err != nil)
	// Output:
	// true DARK_RED
	// true
}

func ExampleSet_Lookup() {
	colors := enumset.New("lookup_color")
	colors.MustDefine("DARK_RED", "crimson")

	fmt.Println(colors.Lookup("CRIMSON"))
	fmt.Println(colors.Lookup("mauve") == nil)
	// Output:
	// DARK_RED
	// true
}

func ExampleVariant_DisplayName() {
	services := enumset.New("service_field")
	tos := services.MustDefine("TYPE_OF_SERVICE")

	fmt.Println(tos.DisplayName())
	fmt.Println(tos.DisplayName(enumset.WithSeparator("-")))
	// Output:
	// Type of Service
	// Type-of-Service
}

func ExampleSet_CanonicalizeJSON() {
	scans := enumset.New("scan_kind")
	scans.MustDefine("SYN_SCAN", "syn")

	fmt.Println(scans.CanonicalizeJSON(`{"scan": "Syn"}`))
	// Output:
	// {"scan":"SYN_SCAN"}
}
