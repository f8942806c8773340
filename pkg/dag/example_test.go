package dag_test

import (
	"fmt"

	"github.com/matzehuels/sitetree/pkg/dag"
)

func ExampleDAG_Roots() {
	// app → lib → core; tool stands alone
	g := dag.New()
	set := func(name, version string, reqs ...dag.RequiredDistribution) {
		meta, _ := dag.NewDistributionMeta(version, dag.NewRequirements(reqs...))
		g.Set(name, meta)
	}
	set("app", "1.0", dag.RequiredDistribution{Name: "lib", RequiredVersion: ">=2"})
	set("lib", "2.1", dag.RequiredDistribution{Name: "core", RequiredVersion: ""})
	set("core", "0.3")
	set("tool", "5.0")

	fmt.Println("Roots:", g.Roots())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Roots: [app tool]
	// Edges: 2
}

func ExampleRequirements_Sorted() {
	reqs := dag.NewRequirements(
		dag.RequiredDistribution{Name: "numpy", RequiredVersion: `>=1.26.0; python_version >= "3.12"`},
		dag.RequiredDistribution{Name: "click", RequiredVersion: ">=8"},
		dag.RequiredDistribution{Name: "numpy", RequiredVersion: `>=1.22.4; python_version < "3.11"`},
		dag.RequiredDistribution{Name: "click", RequiredVersion: ">=8"},
	)
	for _, r := range reqs.Sorted() {
		fmt.Printf("%s %s\n", r.Name, r.RequiredVersion)
	}
	// Output:
	// click >=8
	// numpy >=1.22.4; python_version < "3.11"
	// numpy >=1.26.0; python_version >= "3.12"
}
