package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aleksaelezovic/quadstore/internal/storage"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
	"github.com/aleksaelezovic/quadstore/pkg/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: quadstore <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  demo          - Run a demo with sample data")
		fmt.Println("  count <s|? p|? o|? g|?> - Count quads matching a pattern ('?' for wildcard)")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		runDemo()
	case "count":
		if len(os.Args) < 6 {
			fmt.Println("Usage: quadstore count <subject|?> <predicate|?> <object|?> <graph|?>")
			os.Exit(1)
		}
		runCount(os.Args[2], os.Args[3], os.Args[4], os.Args[5])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runDemo() {
	fmt.Println("=== Quadstore Demo ===")
	fmt.Println()

	badgerStorage, err := storage.NewBadgerStorage()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer badgerStorage.Close()

	world := rdf.NewWorld()
	defer world.Close()
	world.SetErrorSink(func(msg string) { log.Printf("world: %s", msg) })

	model := store.NewModel(world, badgerStorage, true, store.SOP, store.OPS)
	defer model.Close()
	fmt.Println("Model opened (SPO, SOP, OPS materialized, each paired with its graph-prefixed twin)")
	fmt.Println()

	alice := world.NewURI("http://example.org/alice")
	bob := world.NewURI("http://example.org/bob")
	carol := world.NewURI("http://example.org/carol")

	knows := world.NewURI("http://xmlns.com/foaf/0.1/knows")
	name := world.NewURI("http://xmlns.com/foaf/0.1/name")
	age := world.NewURI("http://xmlns.com/foaf/0.1/age")
	xsdInteger := world.NewURI("http://www.w3.org/2001/XMLSchema#integer")

	graph1 := world.NewURI("http://example.org/graph1")
	graph2 := world.NewURI("http://example.org/graph2")

	quads := []store.Quad{
		{Subject: alice, Predicate: name, Object: world.NewLiteral("Alice", nil, "")},
		{Subject: alice, Predicate: age, Object: world.NewLiteral("30", xsdInteger, "")},
		{Subject: alice, Predicate: knows, Object: bob},

		{Subject: bob, Predicate: name, Object: world.NewLiteral("Bob", nil, "")},
		{Subject: bob, Predicate: age, Object: world.NewLiteral("25", xsdInteger, "")},
		{Subject: bob, Predicate: knows, Object: carol},

		{Subject: carol, Predicate: name, Object: world.NewLiteral("Carol", nil, "")},

		{Subject: alice, Predicate: name, Object: world.NewLiteral("Alice in Graph1", nil, ""), Graph: graph1},
		{Subject: bob, Predicate: name, Object: world.NewLiteral("Bob in Graph1", nil, ""), Graph: graph1},
		{Subject: alice, Predicate: name, Object: world.NewLiteral("Alice in Graph2", nil, ""), Graph: graph2},
	}

	fmt.Println("Inserting quads...")
	for _, q := range quads {
		added, err := model.Add(q)
		if err != nil {
			log.Fatalf("add: %v", err)
		}
		if added {
			fmt.Printf("  + %s\n", formatQuad(q))
		}
	}

	fmt.Printf("\nTotal quads stored: %d\n", model.NumQuads())
	fmt.Printf("Total interned nodes: %d\n", model.NumNodes())

	fmt.Println()
	fmt.Println("=== Everyone alice knows ===")
	it, err := model.Find(store.Pattern{Subject: alice, Predicate: knows})
	if err != nil {
		log.Fatalf("find: %v", err)
	}
	for it.Next() {
		fmt.Printf("  alice knows %s\n", it.Quad().Object)
	}
	it.Close()

	fmt.Println()
	fmt.Println("=== Names across every graph ===")
	n, err := model.Count(store.Pattern{Predicate: name})
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	fmt.Printf("  %d statements use foaf:name\n", n)

	fmt.Println()
	fmt.Println("=== Removing graph1 ===")
	removed, err := model.RemoveGraph(graph1)
	if err != nil {
		log.Fatalf("remove graph: %v", err)
	}
	fmt.Printf("  removed %d quads, %d remain\n", removed, model.NumQuads())
}

func runCount(ss, ps, os_, gs string) {
	badgerStorage, err := storage.NewBadgerStorage()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer badgerStorage.Close()

	world := rdf.NewWorld()
	defer world.Close()
	model := store.NewModel(world, badgerStorage, false)
	defer model.Close()

	pattern := store.Pattern{
		Subject:   optionalURI(world, ss),
		Predicate: optionalURI(world, ps),
		Object:    optionalURI(world, os_),
		Graph:     optionalURI(world, gs),
	}
	n, err := model.Count(pattern)
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	fmt.Println(n)
}

func optionalURI(world *rdf.World, s string) *rdf.Node {
	if s == "?" {
		return nil
	}
	return world.NewURI(s)
}

func formatQuad(q store.Quad) string {
	if q.Graph == nil {
		return fmt.Sprintf("%s %s %s", q.Subject, q.Predicate, q.Object)
	}
	return fmt.Sprintf("%s %s %s [%s]", q.Subject, q.Predicate, q.Object, q.Graph)
}
