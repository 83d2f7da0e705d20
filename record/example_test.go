package record_test

import (
	"fmt"

	"dynamic-record/record"
)

func ExampleRecord() {
	r, _ := record.New(map[string]any{"name": "John"})

	_ = r.Set("age", 30)
	_ = r.Set("address", map[string]any{"city": "New York", "zip": "10001"})

	name, _ := r.Get("name")
	fmt.Println(name)

	address, _ := r.Get("address")
	city, _ := address.(*record.Record).Get("city")
	fmt.Println(city)

	_, _ = r.UnionInPlace(map[string]any{"hobby": "Photography"})
	hobby, _ := r.Get("hobby")
	fmt.Println(hobby)

	_, _ = r.DifferenceInPlace(map[string]any{"age": 30})
	fmt.Println(r.Has("age"), r.Len())

	// Output:
	// John
	// New York
	// Photography
	// false 3
}

func ExampleRecord_Call() {
	r, _ := record.New(nil)
	_ = r.Set("greet", func(who string) string { return "Hello " + who })

	out, _ := r.Call("greet", "World")
	fmt.Println(out[0])

	// Output:
	// Hello World
}
