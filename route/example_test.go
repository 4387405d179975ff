package route_test

import (
	"fmt"

	"github.com/jonwraymond/dbroute/route"
)

func ExampleRouter_Route() {
	router := route.New()

	d := router.Route("SELECT * FROM employees WHERE department = 'Engineering'")
	fmt.Printf("%s %.1f %s\n", d.Backend, d.Confidence, d.Reason)

	d = router.Route("query Database A for active users")
	fmt.Printf("%s %.1f %s\n", d.Backend, d.Confidence, d.Reason)

	// Output:
	// relational 0.6 syntax patterns detected
	// document 1.0 explicit mention
}

func ExampleRouter_ClassifyOperation() {
	router := route.New()

	fmt.Println(router.ClassifyOperation("insert a row into orders"))
	fmt.Println(router.ClassifyOperation("drop table audit_log"))
	fmt.Println(router.ClassifyOperation("show me the schemas"))

	// Output:
	// insert
	// drop
	// select
}
